// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daniil Kolpakov

package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kolpakovda/go-journal-client/internal/logger"
	"github.com/kolpakovda/go-journal-client/internal/mock/service"
	"github.com/kolpakovda/go-journal-client/internal/service"
	"github.com/kolpakovda/go-journal-client/internal/utils"
	"github.com/kolpakovda/go-journal-client/internal/workers"
	"github.com/kolpakovda/go-journal-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type appModelFixture struct {
	model   appModel
	journal *mock.MockClientJournalService
	friends *mock.MockClientFriendService
	admin   *mock.MockClientAdminService
	badge   workers.BadgeJob
}

func newAppModelFixture(t *testing.T) *appModelFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	journal := mock.NewMockClientJournalService(ctrl)
	friends := mock.NewMockClientFriendService(ctrl)
	admin := mock.NewMockClientAdminService(ctrl)
	badge := workers.NewBadgeJob(friends, logger.Nop())

	services := &service.ClientServices{
		JournalService: journal,
		FriendService:  friends,
		AdminService:   admin,
	}
	resolver := utils.NewMediaURLResolver("http://localhost:8080", "/api/journals/media")
	model := newMainAppModel(context.Background(), services, badge, resolver, models.User{ID: 7, Name: "Dana"})

	return &appModelFixture{model: model, journal: journal, friends: friends, admin: admin, badge: badge}
}

func (f *appModelFixture) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	updated, ok := next.(appModel)
	require.True(t, ok)
	f.model = updated
	return cmd
}

func testEntries() []models.JournalEntry {
	return []models.JournalEntry{
		{ID: 1, Title: "Morning run", Mood: "happy", Date: "2026-08-01"},
		{ID: 2, Title: "Rainy day", Mood: "calm", Date: "2026-08-03"},
		{ID: 3, Title: "Deadline", Mood: "stressed", Date: "2026-08-02"},
	}
}

func TestAppModel_EntriesLoaded_DefaultOrderIsNewestFirst(t *testing.T) {
	f := newAppModelFixture(t)

	f.update(t, entriesLoadedMsg{entries: testEntries()})

	require.Len(t, f.model.dashboard.visible, 3)
	assert.Equal(t, int64(2), f.model.dashboard.visible[0].ID)
	assert.Equal(t, int64(3), f.model.dashboard.visible[1].ID)
	assert.Equal(t, int64(1), f.model.dashboard.visible[2].ID)
	assert.False(t, f.model.dashboard.loading)
}

func TestAppModel_MoodKeyCyclesFilter(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	// choices cycle all -> calm -> happy -> stressed
	f.update(t, keyPress("m"))
	require.Len(t, f.model.dashboard.visible, 1)
	assert.Equal(t, "Rainy day", f.model.dashboard.visible[0].Title)

	f.update(t, keyPress("m"))
	require.Len(t, f.model.dashboard.visible, 1)
	assert.Equal(t, "Morning run", f.model.dashboard.visible[0].Title)
}

func TestAppModel_SearchInputFiltersAsYouType(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	f.update(t, keyPress("/"))
	require.True(t, f.model.dashboard.searching)

	for _, r := range "rain" {
		f.update(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	require.Len(t, f.model.dashboard.visible, 1)
	assert.Equal(t, "Rainy day", f.model.dashboard.visible[0].Title)

	f.update(t, keyPress("esc"))
	assert.False(t, f.model.dashboard.searching)
	assert.Len(t, f.model.dashboard.visible, 1)
}

func TestAppModel_DeleteIsOptimisticAndRollsBackOnError(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	f.journal.EXPECT().Delete(gomock.Any(), int64(2)).Return(errors.New("boom"))

	f.update(t, keyPress("d"))
	require.True(t, f.model.showConfirm)

	cmd := f.update(t, keyPress("y"))
	require.NotNil(t, cmd)

	// the selected entry is gone before the server answered
	assert.False(t, f.model.showConfirm)
	require.Len(t, f.model.dashboard.visible, 2)
	assert.True(t, f.model.dashboard.pending[2])

	f.update(t, cmd())

	// server rejected, snapshot restored
	assert.True(t, f.model.showError)
	require.Len(t, f.model.dashboard.visible, 3)
	assert.False(t, f.model.dashboard.pending[2])
}

func TestAppModel_DeleteSuccessKeepsSplicedList(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	f.journal.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)

	f.update(t, keyPress("d"))
	cmd := f.update(t, keyPress("y"))
	f.update(t, cmd())

	assert.False(t, f.model.showError)
	assert.Len(t, f.model.dashboard.visible, 2)
	assert.Empty(t, f.model.dashboard.removed)
	assert.Equal(t, "Entry deleted", f.model.dashboard.status)
}

func TestAppModel_OverlappingDeletesRollBackIndependently(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	f.journal.EXPECT().Delete(gomock.Any(), int64(2)).Return(errors.New("boom"))
	f.journal.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	// delete entry 2, then entry 3 while the first delete is still in flight
	f.update(t, keyPress("d"))
	deleteTwo := f.update(t, keyPress("y"))
	require.NotNil(t, deleteTwo)

	f.update(t, keyPress("d"))
	deleteThree := f.update(t, keyPress("y"))
	require.NotNil(t, deleteThree)

	// 3 succeeds first, then 2 is rejected
	f.update(t, deleteThree())
	f.update(t, deleteTwo())

	assert.True(t, f.model.showError)
	ids := make([]int64, 0, len(f.model.dashboard.entries))
	for _, entry := range f.model.dashboard.entries {
		ids = append(ids, entry.ID)
	}
	assert.ElementsMatch(t, []int64{1, 2}, ids)
	assert.False(t, f.model.dashboard.pending[2])
	assert.False(t, f.model.dashboard.pending[3])
	assert.Empty(t, f.model.dashboard.removed)
}

func TestAppModel_PublishReloadsFullList(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	f.journal.EXPECT().Publish(gomock.Any(), int64(2)).Return(nil)

	cmd := f.update(t, keyPress("p"))
	require.NotNil(t, cmd)
	assert.True(t, f.model.dashboard.pending[2])

	reload := f.update(t, cmd())
	require.NotNil(t, reload)
	assert.True(t, f.model.dashboard.loading)
	assert.False(t, f.model.dashboard.pending[2])

	f.journal.EXPECT().Load(gomock.Any(), int64(7), int64(7)).Return(testEntries(), nil)
	msg := reload()
	loaded, ok := msg.(entriesLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
}

func TestAppModel_EntryPatchedUpdatesDetailAndList(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	f.update(t, keyPress("enter"))
	require.Equal(t, screenEntryDetail, f.model.currentScreen)
	require.Equal(t, int64(2), f.model.detail.entry.ID)

	patched := models.JournalEntry{ID: 2, Title: "Rainy day", Mood: "calm", Date: "2026-08-03", MediaURLs: []string{"rain.png"}}
	f.update(t, entryPatchedMsg{entry: patched})

	assert.Equal(t, []string{"rain.png"}, f.model.detail.entry.MediaURLs)
	for _, entry := range f.model.dashboard.entries {
		if entry.ID == 2 {
			assert.Equal(t, []string{"rain.png"}, entry.MediaURLs)
		}
	}
	assert.Equal(t, "Attachments updated", f.model.detail.status)
}

func TestAppModel_AcceptRequestDecrementsBadgeOptimistically(t *testing.T) {
	f := newAppModelFixture(t)

	f.friends.EXPECT().PendingCount(gomock.Any()).Return(2, nil)
	f.badge.RefreshNow(context.Background())
	require.Equal(t, 2, f.badge.Count())

	overview := service.FriendOverview{
		Pending: []models.FriendRequest{{ID: 11, Sender: models.User{Name: "Iris", Email: "iris@example.com"}}},
	}
	f.model.currentScreen = screenFriends
	f.update(t, friendsLoadedMsg{overview: overview})

	f.friends.EXPECT().Accept(gomock.Any(), int64(11)).Return(nil)

	cmd := f.update(t, keyPress("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, f.badge.Count())

	f.friends.EXPECT().Overview(gomock.Any()).Return(service.FriendOverview{}, nil)
	f.friends.EXPECT().FriendsOf(gomock.Any(), int64(7)).Return(nil, nil)
	reload := f.update(t, cmd())
	require.NotNil(t, reload)
	batch, ok := reload().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		f.update(t, c())
	}

	assert.Empty(t, f.model.friends.overview.Pending)
}

func TestAppModel_RemoveFriendFromFriendsTab(t *testing.T) {
	f := newAppModelFixture(t)
	f.model.currentScreen = screenFriends
	f.update(t, friendListLoadedMsg{friends: []models.User{{ID: 21, Name: "Iris", Email: "iris@example.com"}}})
	f.model.friends.section = friendsSectionFriends

	f.friends.EXPECT().Remove(gomock.Any(), int64(21)).Return(nil)
	cmd := f.update(t, keyPress("x"))
	require.NotNil(t, cmd)

	f.friends.EXPECT().FriendsOf(gomock.Any(), int64(7)).Return(nil, nil)
	reload := f.update(t, cmd())
	require.NotNil(t, reload)
	f.update(t, reload())

	assert.Empty(t, f.model.friends.friends)
	assert.False(t, f.model.friends.loading)
}

func TestAppModel_AdminDeleteUserGoesThroughConfirm(t *testing.T) {
	f := newAppModelFixture(t)
	f.model.user.Roles = []models.Role{{Name: "ROLE_ADMIN"}}
	f.model.currentScreen = screenAdminUsers
	f.update(t, adminUsersLoadedMsg{users: []models.User{{ID: 3, Email: "x@example.com", Enabled: true}}})

	f.update(t, keyPress("d"))
	require.True(t, f.model.showConfirm)
	assert.Equal(t, "x@example.com", f.model.confirm.message)

	f.admin.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(nil)
	cmd := f.update(t, keyPress("y"))
	require.NotNil(t, cmd)

	f.admin.EXPECT().Users(gomock.Any()).Return(nil, nil)
	reload := f.update(t, cmd())
	require.NotNil(t, reload)
	f.update(t, reload())
	assert.Empty(t, f.model.adminUsers.users)
}

func TestAppModel_AddFilesWarnsAboutLargeFilesBeforeUpload(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})
	f.update(t, keyPress("enter"))
	require.Equal(t, screenEntryDetail, f.model.currentScreen)

	f.update(t, keyPress("a"))
	require.True(t, f.model.detail.adding)

	path := filepath.Join(t.TempDir(), "holiday.mov")
	file, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, file.Truncate(service.MaxUploadSoftLimit+1))
	require.NoError(t, file.Close())

	f.model.detail.pathInput.SetValue(path)
	cmd := f.update(t, keyPress("enter"))
	require.NotNil(t, cmd)

	// warning is up while the upload is still in flight
	assert.Contains(t, f.model.detail.status, "holiday.mov")
	assert.True(t, f.model.detail.busy)
}

func TestAppModel_EditFormCancelReturnsToOrigin(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: testEntries()})

	// opened from the dashboard, cancel goes back there
	f.update(t, keyPress("e"))
	require.Equal(t, screenEntryForm, f.model.currentScreen)
	require.True(t, f.model.entryForm.editing)
	f.update(t, keyPress("esc"))
	assert.Equal(t, screenDashboard, f.model.currentScreen)

	// opened from the detail page, cancel goes back to the detail page
	f.update(t, keyPress("enter"))
	require.Equal(t, screenEntryDetail, f.model.currentScreen)
	f.update(t, keyPress("e"))
	require.Equal(t, screenEntryForm, f.model.currentScreen)
	f.update(t, keyPress("esc"))
	assert.Equal(t, screenEntryDetail, f.model.currentScreen)
}

func TestAppModel_LogoutKeyQuitsWithLogoutFlag(t *testing.T) {
	f := newAppModelFixture(t)
	f.update(t, entriesLoadedMsg{entries: nil})

	cmd := f.update(t, keyPress("l"))
	require.NotNil(t, cmd)
	assert.True(t, f.model.logout)
}
