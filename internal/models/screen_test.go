package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_Title(t *testing.T) {
	tests := []struct {
		screen Screen
		title  string
	}{
		{ScreenDashboard, "Home"},
		{ScreenAccounts, "My Accounts"},
		{ScreenTransactions, "Transaction History"},
		{ScreenTransfer, "Transfer Funds"},
		{ScreenProfile, "Profile"},
		{Screen("settings"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen), func(t *testing.T) {
			assert.Equal(t, tt.title, tt.screen.Title())
		})
	}
}

func TestScreen_RequiresAccount(t *testing.T) {
	for _, screen := range AllScreens() {
		if screen == ScreenTransactions {
			assert.True(t, screen.RequiresAccount())
		} else {
			assert.False(t, screen.RequiresAccount(), "screen %s should not require an account", screen)
		}
	}
}

func TestIsValidScreen(t *testing.T) {
	for _, screen := range AllScreens() {
		assert.True(t, IsValidScreen(screen.String()))
	}

	assert.False(t, IsValidScreen(""))
	assert.False(t, IsValidScreen("settings"))
	assert.False(t, IsValidScreen("Dashboard"))
}

func TestAllScreens_Order(t *testing.T) {
	screens := AllScreens()

	assert.Len(t, screens, 5)
	assert.Equal(t, ScreenDashboard, screens[0])
	assert.Equal(t, ScreenProfile, screens[len(screens)-1])
}
