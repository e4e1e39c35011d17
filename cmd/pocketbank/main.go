// Command pocketbank runs the banking demo as an interactive terminal
// session. It wires the seeded mock data store, the simulated biometric
// hardware and the logging speech engine into the session controller, then
// reads commands from stdin and renders the active screen after each one.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"pocketbank/internal/config"
	"pocketbank/internal/database"
	"pocketbank/internal/device"
	"pocketbank/internal/dto"
	apperrors "pocketbank/internal/errors"
	"pocketbank/internal/format"
	"pocketbank/internal/logging"
	"pocketbank/internal/models"
	"pocketbank/internal/repositories"
	"pocketbank/internal/services"
)

func main() {
	_ = godotenv.Load()

	logger := logging.Setup()
	cfg := config.Load()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to open data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.AutoMigrate(); err != nil {
		logger.Error("failed to migrate data store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeder := database.NewSeeder(db, &cfg.Demo, logger)
	if err := seeder.Seed(); err != nil {
		logger.Error("failed to seed demo data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	accounts := repositories.NewAccountDataProvider(db.DB)
	metrics := services.NewPrometheusMetrics()
	gate := services.NewBiometricGate(device.NewSimulatedAuthenticator(&cfg.Biometrics), metrics, logger)
	announcer := services.NewSpeechAnnouncer(device.NewLoggedSpeechEngine(logger, cfg.Speech.SupportedLanguages), metrics, logger)

	controller := services.NewSessionController(
		accounts,
		gate,
		announcer,
		metrics,
		logger,
		cfg.Biometrics.EnabledByDefault,
		cfg.Speech.DefaultLanguage,
		cfg.Biometrics.PromptText,
	)
	summary := services.NewSummaryService(accounts)

	app := &consoleApp{
		controller: controller,
		summary:    summary,
		accounts:   accounts,
		out:        os.Stdout,
	}
	app.run(context.Background(), os.Stdin)
}

// consoleApp renders the session to a terminal and translates typed commands
// into controller calls.
type consoleApp struct {
	controller services.SessionControllerInterface
	summary    services.SummaryServiceInterface
	accounts   repositories.AccountDataProviderInterface
	out        io.Writer
}

func (a *consoleApp) run(ctx context.Context, in io.Reader) {
	fmt.Fprintln(a.out, "PocketBank demo. Type 'help' for commands.")
	a.render()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]
		if command == "quit" || command == "exit" {
			return
		}

		a.dispatch(ctx, command, args)
		a.render()
	}
}

func (a *consoleApp) dispatch(ctx context.Context, command string, args []string) {
	switch command {
	case "help":
		a.printHelp()
	case "login":
		req := dto.LoginRequest{}
		if len(args) > 0 {
			req.Email = args[0]
		}
		if len(args) > 1 {
			req.Password = args[1]
		}
		if _, err := a.controller.AttemptPasswordLogin(req); err != nil {
			a.printNotice(err)
		}
	case "bio":
		if _, err := a.controller.AttemptBiometricLogin(ctx); err != nil {
			a.printNotice(err)
		}
	case "logout":
		a.controller.Logout()
	case "home":
		a.navigate(models.ScreenDashboard, nil)
	case "accounts":
		a.navigate(models.ScreenAccounts, nil)
	case "tx":
		a.openTransactions(args)
	case "transfer":
		a.navigate(models.ScreenTransfer, nil)
		if len(args) > 0 {
			if _, err := a.controller.InitiateTransfer(dto.TransferRequest{Amount: args[0]}); err != nil {
				a.printNotice(err)
			}
		}
	case "confirm":
		outcome, err := a.controller.ConfirmTransfer()
		if err != nil {
			a.printNotice(err)
		} else if outcome == models.TransferConfirmed {
			fmt.Fprintln(a.out, "[Success] Transfer complete!")
		}
	case "cancel":
		a.controller.CancelTransfer()
	case "profile":
		a.navigate(models.ScreenProfile, nil)
	case "lang":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "usage: lang <code>   e.g. lang hi-IN")
			return
		}
		if err := a.controller.SetSpeechLanguage(args[0]); err != nil {
			a.printNotice(err)
		}
	case "biometrics":
		if len(args) == 0 || (args[0] != "on" && args[0] != "off") {
			fmt.Fprintln(a.out, "usage: biometrics on|off")
			return
		}
		a.controller.SetBiometricsEnabled(args[0] == "on")
	case "read":
		a.readAloud(args)
	case "say":
		a.controller.Announce(strings.Join(args, " "))
	default:
		fmt.Fprintf(a.out, "unknown command %q, type 'help'\n", command)
	}
}

// openTransactions resolves "tx N" (1-based position in the account list)
// into the account's id before navigating.
func (a *consoleApp) openTransactions(args []string) {
	index, ok := parseIndex(args)
	if !ok {
		fmt.Fprintln(a.out, "usage: tx <account number>   e.g. tx 1")
		return
	}

	accounts, err := a.accounts.ListAccounts()
	if err != nil {
		a.printNotice(err)
		return
	}

	var id *uuid.UUID
	if index <= len(accounts) {
		id = &accounts[index-1].ID
	}
	a.navigate(models.ScreenTransactions, id)
}

// readAloud speaks the on-screen monetary figures, mirroring the app's
// speaker buttons: the dashboard total, an account card, or a ledger row of
// the currently opened account.
func (a *consoleApp) readAloud(args []string) {
	state := a.controller.State()

	if len(args) == 0 {
		summary, err := a.summary.GetDashboardSummary()
		if err != nil {
			a.printNotice(err)
			return
		}
		a.controller.Announce(format.TotalBalanceLine(summary.TotalBalance, state.SpeechLanguage))
		return
	}

	switch args[0] {
	case "account":
		index, ok := parseIndex(args[1:])
		if !ok {
			fmt.Fprintln(a.out, "usage: read account <number>   e.g. read account 1")
			return
		}

		accounts, err := a.accounts.ListAccounts()
		if err != nil {
			a.printNotice(err)
			return
		}
		if index > len(accounts) {
			fmt.Fprintf(a.out, "no account %d\n", index)
			return
		}
		a.controller.Announce(format.AccountBalanceLine(&accounts[index-1], state.SpeechLanguage))
	case "tx":
		index, ok := parseIndex(args[1:])
		if !ok {
			fmt.Fprintln(a.out, "usage: read tx <number>   e.g. read tx 1")
			return
		}

		if state.SelectedAccountID == nil {
			fmt.Fprintln(a.out, "open an account's history first with 'tx <number>'")
			return
		}
		transactions, err := a.accounts.ListTransactions(*state.SelectedAccountID)
		if err != nil {
			a.printNotice(err)
			return
		}
		if index > len(transactions) {
			fmt.Fprintf(a.out, "no transaction %d\n", index)
			return
		}
		a.controller.Announce(format.TransactionLine(&transactions[index-1], state.SpeechLanguage))
	default:
		fmt.Fprintln(a.out, "usage: read | read account <number> | read tx <number>")
	}
}

func parseIndex(args []string) (int, bool) {
	if len(args) == 0 {
		return 0, false
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return 0, false
	}
	return index, true
}

func (a *consoleApp) navigate(screen models.Screen, accountID *uuid.UUID) {
	if err := a.controller.NavigateTo(screen, accountID); err != nil {
		a.printNotice(err)
	}
}

// render draws the active screen. Each screen has its own renderer; an
// unknown screen in the session would be a programming error upstream.
func (a *consoleApp) render() {
	state := a.controller.State()
	if !state.LoggedIn {
		a.renderLogin(state)
		return
	}

	renderers := map[models.Screen]func(dto.SessionState){
		models.ScreenDashboard:    a.renderDashboard,
		models.ScreenAccounts:     a.renderAccounts,
		models.ScreenTransactions: a.renderTransactions,
		models.ScreenTransfer:     a.renderTransfer,
		models.ScreenProfile:      a.renderProfile,
	}

	fmt.Fprintf(a.out, "\n== %s ==\n", state.ActiveScreen.Title())
	if render, ok := renderers[state.ActiveScreen]; ok {
		render(state)
	}
	fmt.Fprintln(a.out)
}

func (a *consoleApp) renderLogin(state dto.SessionState) {
	fmt.Fprintln(a.out, "\n== Sign In ==")
	fmt.Fprintln(a.out, "Commands: login [email] [password], bio")
	if state.BiometricsEnabled {
		fmt.Fprintln(a.out, "Biometric login is enabled.")
	}
	fmt.Fprintln(a.out)
}

func (a *consoleApp) renderDashboard(state dto.SessionState) {
	summary, err := a.summary.GetDashboardSummary()
	if err != nil {
		a.printNotice(err)
		return
	}

	fmt.Fprintf(a.out, "Welcome back, %s\n", summary.Profile.Name)
	fmt.Fprintf(a.out, "%s\n", format.TotalBalanceLine(summary.TotalBalance, state.SpeechLanguage))
	if len(summary.RecentTransactions) > 0 {
		fmt.Fprintln(a.out, "Recent activity:")
		for i := range summary.RecentTransactions {
			tx := &summary.RecentTransactions[i]
			fmt.Fprintf(a.out, "  %s  %-24s %s\n", tx.Date.Format("Jan 02"), tx.Description, format.SignedAmount(tx))
		}
	}
}

func (a *consoleApp) renderAccounts(state dto.SessionState) {
	accounts, err := a.accounts.ListAccounts()
	if err != nil {
		a.printNotice(err)
		return
	}

	for i := range accounts {
		account := &accounts[i]
		fmt.Fprintf(a.out, "%d. %-22s %s  %s\n",
			i+1, account.DisplayName, account.MaskedNumber,
			format.Currency(account.Balance, state.SpeechLanguage))
	}
	fmt.Fprintln(a.out, "Use 'tx <number>' to open an account's history.")
}

func (a *consoleApp) renderTransactions(state dto.SessionState) {
	if state.SelectedAccountID == nil {
		return
	}

	account, err := a.accounts.GetAccountByID(*state.SelectedAccountID)
	if err != nil {
		a.printNotice(err)
		return
	}

	transactions, err := a.accounts.ListTransactions(account.ID)
	if err != nil {
		a.printNotice(err)
		return
	}

	fmt.Fprintf(a.out, "%s %s\n", account.DisplayName, account.MaskedNumber)
	if len(transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions yet.")
		return
	}
	for i := range transactions {
		tx := &transactions[i]
		fmt.Fprintf(a.out, "  %s  %-24s %s\n", tx.Date.Format("2006-01-02"), tx.Description, format.SignedAmount(tx))
	}
}

func (a *consoleApp) renderTransfer(state dto.SessionState) {
	if state.PendingTransfer == nil {
		fmt.Fprintln(a.out, "Enter an amount with 'transfer <amount>'.")
		return
	}

	pending := state.PendingTransfer
	fmt.Fprintf(a.out, "Transfer %s from %s to %s\n",
		format.Currency(pending.Amount, state.SpeechLanguage),
		pending.FromAccount, pending.ToAccount)
	fmt.Fprintln(a.out, "Type 'confirm' to complete or 'cancel' to discard.")
}

func (a *consoleApp) renderProfile(state dto.SessionState) {
	profile, err := a.accounts.GetProfile()
	if err != nil {
		a.printNotice(err)
		return
	}

	fmt.Fprintf(a.out, "%s <%s>\n", profile.Name, profile.Email)
	biometrics := "off"
	if state.BiometricsEnabled {
		biometrics = "on"
	}
	fmt.Fprintf(a.out, "Biometric login: %s\n", biometrics)
	fmt.Fprintf(a.out, "Speech language: %s\n", state.SpeechLanguage)
}

// printNotice renders a failed operation the way the app shows it: a single
// blocking notice, then back to the unchanged screen.
func (a *consoleApp) printNotice(err error) {
	notice := apperrors.NoticeFromError(err)
	fmt.Fprintf(a.out, "[%s] %s\n", notice.Title, notice.Message)
}

func (a *consoleApp) printHelp() {
	fmt.Fprint(a.out, `Commands:
  login [email] [password]  password login (demo accepts the empty form)
  bio                       biometric login
  logout                    sign out
  home                      dashboard
  accounts                  account list
  tx <number>               transaction history for the numbered account
  transfer <amount>         stage a transfer
  confirm | cancel          resolve the staged transfer
  profile                   profile and preferences
  lang <code>               set speech language (en-US, hi-IN, es-ES, fr-FR, de-DE)
  biometrics on|off         toggle biometric login
  read                      read the total balance aloud
  read account <number>     read an account's balance aloud
  read tx <number>          read a ledger entry of the opened account aloud
  say <text>                read text aloud
  quit                      exit
`)
}
