package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedItemTypes_Default(t *testing.T) {
	query := &DashboardQuery{}
	assert.Equal(t, []string{"Stories", "Bugs", "Tasks", "Epics"}, query.NormalizedItemTypes())
}

func TestNormalizedItemTypes_Explicit(t *testing.T) {
	query := &DashboardQuery{ItemTypes: []string{"Stories"}}
	assert.Equal(t, []string{"Stories"}, query.NormalizedItemTypes())
}
