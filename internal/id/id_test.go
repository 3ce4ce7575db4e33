package id

import (
	"testing"

	"github.com/rogersnm/teamboard/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNext_Empty(t *testing.T) {
	assert.Equal(t, model.ID(1), Next([]model.User{}))
	assert.Equal(t, model.ID(1), Next[model.Task](nil))
}

func TestNext_MaxPlusOne(t *testing.T) {
	users := []model.User{{ID: 3}, {ID: 1}}
	assert.Equal(t, model.ID(4), Next(users))
}

func TestNext_FreedHighestIDIsReused(t *testing.T) {
	tasks := []model.Task{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	assert.Equal(t, model.ID(5), Next(tasks))

	tasks = tasks[:3]
	assert.Equal(t, model.ID(4), Next(tasks))
}

func TestNext_Gaps(t *testing.T) {
	projects := []model.Project{{ID: 7}, {ID: 2}}
	assert.Equal(t, model.ID(8), Next(projects))
}
