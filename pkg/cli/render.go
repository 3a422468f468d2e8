package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/registry"
	"github.com/fatih/color"
)

// ColorEnabled resolves a config.CLI color mode against whether output is a terminal.
func ColorEnabled(mode string, isTerminal bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal
	}
}

// Renderer writes operation results in the menu's wording.
type Renderer struct {
	out     io.Writer
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	title   *color.Color
}

func NewRenderer(out io.Writer, colored bool) *Renderer {
	r := &Renderer{
		out:     out,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed),
		title:   color.New(color.FgCyan, color.Bold),
	}
	for _, c := range []*color.Color{r.success, r.warn, r.fail, r.title} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) Menu() {
	r.title.Fprintln(r.out, "Banking System Menu")
	for _, line := range menuLines {
		fmt.Fprintln(r.out, line)
	}
}

func (r *Renderer) Deposited(e account.Entry) {
	r.success.Fprintf(r.out, "Deposited: %s to account: %s\n", e.Amount, e.AccountNumber)
}

func (r *Renderer) Withdrew(e account.Entry) {
	r.success.Fprintf(r.out, "Withdrew: %s from account: %s\n", e.Amount, e.AccountNumber)
}

func (r *Renderer) InterestAdded(a account.Accrual) {
	r.success.Fprintf(r.out, "Interest of %s added to account: %s\n", a.Interest, a.AccountNumber)
}

func (r *Renderer) Info(info account.Info) {
	fmt.Fprintf(r.out, "Account Number: %s\n", info.Number)
	fmt.Fprintf(r.out, "Account Holder: %s\n", info.Holder)
	fmt.Fprintf(r.out, "Balance: %s\n", info.Balance)
	switch {
	case info.TermMonths != nil && info.InterestRate != nil:
		fmt.Fprintf(r.out, "Term: %d months, Interest Rate: %s%%\n", *info.TermMonths, *info.InterestRate)
	case info.InterestRate != nil:
		fmt.Fprintf(r.out, "Interest Rate: %s%%\n", *info.InterestRate)
	}
	if info.OverdraftLimit != nil {
		fmt.Fprintf(r.out, "Overdraft Limit: %s\n", *info.OverdraftLimit)
	}
}

// List prints one line per account in creation order.
func (r *Renderer) List(infos []account.Info) {
	if len(infos) == 0 {
		r.warn.Fprintln(r.out, "No accounts.")
		return
	}
	for _, info := range infos {
		fmt.Fprintf(r.out, "%s\t%s\t%s\t%s\n", info.Number, info.Holder, info.Kind, info.Balance)
	}
}

// Outcome prints a refused operation on account number.
func (r *Renderer) Outcome(err error, number string) {
	switch {
	case errors.Is(err, account.ErrInsufficientFunds):
		r.warn.Fprintf(r.out, "Insufficient funds for withdrawal from account: %s\n", number)
	case errors.Is(err, account.ErrOverdraftLimitExceeded):
		r.warn.Fprintf(r.out, "Overdraft limit exceeded for account: %s\n", number)
	case errors.Is(err, account.ErrInterestNotApplicable):
		r.warn.Fprintln(r.out, "Interest calculation not applicable for this account type.")
	case errors.Is(err, registry.ErrCapacityReached):
		r.CapacityReached()
	case errors.Is(err, registry.ErrAccountNotFound):
		r.warn.Fprintf(r.out, "Account not found: %s\n", number)
	default:
		r.Error(err)
	}
}

func (r *Renderer) CapacityReached() {
	r.warn.Fprintln(r.out, "Maximum account limit reached.")
}

func (r *Renderer) InvalidChoice() {
	r.fail.Fprintln(r.out, "Invalid choice. Please try again.")
}

func (r *Renderer) InvalidInput() {
	r.fail.Fprintln(r.out, "Invalid input")
}

func (r *Renderer) Error(err error) {
	r.fail.Fprintf(r.out, "Error: %v\n", err)
}

func (r *Renderer) Exit() {
	fmt.Fprintln(r.out, "Exiting the banking system.")
}
