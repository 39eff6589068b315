package render

import (
	"errors"
	"testing"

	"gator-swamp-client/internal/models"

	"github.com/stretchr/testify/assert"
)

func findInstruction(instructions []Instruction, id SectionID) (Instruction, bool) {
	for _, instr := range instructions {
		if instr.Section == id {
			return instr, true
		}
	}
	return Instruction{}, false
}

func TestComposeStatsFallsBackToZeros(t *testing.T) {
	snap := NewSnapshot(models.PageAdminDashboard, models.Anonymous(), 1)
	snap.Sections[SectionStats] = Failed(errors.New("engine down"))
	snap.Sections[SectionUsers] = Success([]models.UserSummary{{Username: "gator"}})

	instructions := Compose(snap)

	stats, ok := findInstruction(instructions, SectionStats)
	assert.True(t, ok)
	assert.Equal(t, ShowContent, stats.Kind)
	assert.Equal(t, models.AggregateStats{}, stats.Data)

	// The failure stays isolated: users still render their content
	users, ok := findInstruction(instructions, SectionUsers)
	assert.True(t, ok)
	assert.Equal(t, ShowContent, users.Kind)
}

func TestComposeErrorIsolation(t *testing.T) {
	snap := NewSnapshot(models.PageCategories, models.Anonymous(), 1)
	snap.Sections[SectionCategories] = Failed(errors.New("boom"))
	snap.Sections[SectionPosts] = Success([]models.Post{{Title: "hello"}})

	instructions := Compose(snap)

	categories, _ := findInstruction(instructions, SectionCategories)
	assert.Equal(t, ShowError, categories.Kind)
	assert.NotEmpty(t, categories.Message)

	posts, _ := findInstruction(instructions, SectionPosts)
	assert.Equal(t, ShowContent, posts.Kind)
}

func TestComposeEmptyStates(t *testing.T) {
	snap := NewSnapshot(models.PageHome, models.Anonymous(), 1)
	snap.Sections[SectionPosts] = Success([]models.Post{})

	instructions := Compose(snap)

	posts, _ := findInstruction(instructions, SectionPosts)
	assert.Equal(t, ShowEmpty, posts.Kind)
	assert.Equal(t, "No posts available", posts.Message)
}

func TestComposeEmptyNotifications(t *testing.T) {
	snap := NewSnapshot(models.PageActivity, models.Anonymous(), 1)
	snap.Sections[SectionNotifications] = Success([]models.Notification{})

	instructions := Compose(snap)

	notifications, _ := findInstruction(instructions, SectionNotifications)
	assert.Equal(t, ShowEmpty, notifications.Kind)
	assert.Equal(t, "No new notifications", notifications.Message)
}

func TestComposeLoading(t *testing.T) {
	snap := NewSnapshot(models.PageHome, models.Anonymous(), 1)
	snap.Sections[SectionPosts] = Loading()

	instructions := Compose(snap)

	posts, _ := findInstruction(instructions, SectionPosts)
	assert.Equal(t, ShowLoading, posts.Kind)
}
