package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobease/jobease-cli/internal/client/models"
)

func TestFilterByName(t *testing.T) {
	all := []models.Notifier{
		{ID: 1, Name: "Backend Bangalore"},
		{ID: 2, Name: "Frontend Pune"},
		{ID: 3, Name: "backend intern"},
	}

	got := filterByName(all, "backend")
	assert.Len(t, got, 2)

	got = filterByName(all, "")
	assert.Len(t, got, 3)

	got = filterByName(all, "nothing")
	assert.Empty(t, got)
}

func TestReplaceAndRemoveNotifier(t *testing.T) {
	all := []models.Notifier{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	all = replaceNotifier(all, models.Notifier{ID: 2, Name: "b2"})
	assert.Equal(t, "b2", all[1].Name)

	all = removeNotifier(all, 1)
	assert.Len(t, all, 1)
	assert.Equal(t, int64(2), all[0].ID)
}

func TestParseID(t *testing.T) {
	id, ok := parseID([]string{"42"})
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = parseID(nil)
	assert.False(t, ok)

	_, ok = parseID([]string{"abc"})
	assert.False(t, ok)

	_, ok = parseID([]string{"-1"})
	assert.False(t, ok)

	_, ok = parseID([]string{"0"})
	assert.False(t, ok)
}

func TestReplaceAndRemoveNotification(t *testing.T) {
	list := []models.Notification{{ID: 1}, {ID: 2, CompanyName: "old"}}

	list = replaceNotification(list, models.Notification{ID: 2, CompanyName: "new"})
	assert.Equal(t, "new", list[1].CompanyName)

	list = removeNotification(list, 2)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
}
