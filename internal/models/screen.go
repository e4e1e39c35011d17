package models

// Screen identifies one of the app's top-level surfaces. Routing is done
// over this explicit set rather than free-form strings.
type Screen string

const (
	ScreenDashboard    Screen = "dashboard"
	ScreenAccounts     Screen = "accounts"
	ScreenTransactions Screen = "transactions"
	ScreenTransfer     Screen = "transfer"
	ScreenProfile      Screen = "profile"
)

// AllScreens returns every navigable screen in display order.
func AllScreens() []Screen {
	return []Screen{
		ScreenDashboard,
		ScreenAccounts,
		ScreenTransactions,
		ScreenTransfer,
		ScreenProfile,
	}
}

func (s Screen) String() string {
	return string(s)
}

// Title returns the header title shown for the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenDashboard:
		return "Home"
	case ScreenAccounts:
		return "My Accounts"
	case ScreenTransactions:
		return "Transaction History"
	case ScreenTransfer:
		return "Transfer Funds"
	case ScreenProfile:
		return "Profile"
	default:
		return ""
	}
}

// RequiresAccount reports whether navigating to the screen needs a selected
// account. Only the transaction history is scoped to a single account.
func (s Screen) RequiresAccount() bool {
	return s == ScreenTransactions
}

// IsValidScreen checks if the screen name is one of the known screens.
func IsValidScreen(screen string) bool {
	switch Screen(screen) {
	case ScreenDashboard, ScreenAccounts, ScreenTransactions, ScreenTransfer, ScreenProfile:
		return true
	default:
		return false
	}
}
