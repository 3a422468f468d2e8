// Package cli implements the interactive banking menu on top of the account service.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain/account"
	"github.com/amirasaad/banking/pkg/registry"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Menu choices.
const (
	ChoiceCreateSavings = iota + 1
	ChoiceCreateChecking
	ChoiceCreateFixedDeposit
	ChoiceDeposit
	ChoiceWithdraw
	ChoiceCalculateInterest
	ChoiceDisplayInfo
	ChoiceExit
	ChoiceListAccounts
)

var menuLines = []string{
	"1. Create Savings Account",
	"2. Create Checking Account",
	"3. Create Fixed Deposit Account",
	"4. Deposit",
	"5. Withdraw",
	"6. Calculate Interest",
	"7. Display Account Info",
	"8. Exit",
	"9. List Accounts",
}

// AccountService is the subset of the account service the menu drives.
type AccountService interface {
	CreateAccount(ctx context.Context, number, holder string, v account.Variant) (account.Info, error)
	Deposit(ctx context.Context, number string, amount decimal.Decimal) (account.Entry, error)
	Withdraw(ctx context.Context, number string, amount decimal.Decimal) (account.Entry, error)
	CalculateInterest(ctx context.Context, number string) (account.Accrual, error)
	DisplayAccountInfo(ctx context.Context, number string) (account.Info, error)
	Accounts(ctx context.Context) []account.Info
	AtCapacity(ctx context.Context) bool
	Close()
}

// Option configures a Menu.
type Option func(*Menu)

// WithPrompts prints the menu and field prompts. Disable for piped input.
func WithPrompts(show bool) Option {
	return func(m *Menu) { m.showPrompts = show }
}

// WithPrompt sets the choice prompt.
func WithPrompt(prompt string) Option {
	return func(m *Menu) { m.prompt = prompt }
}

// WithColor enables colored output.
func WithColor(enabled bool) Option {
	return func(m *Menu) { m.colored = enabled }
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) { m.logger = logger }
}

// Menu reads whitespace separated tokens and runs the matching account operations.
type Menu struct {
	svc         AccountService
	in          *bufio.Scanner
	out         io.Writer
	render      *Renderer
	validate    *validator.Validate
	logger      *slog.Logger
	prompt      string
	showPrompts bool
	colored     bool
}

func NewMenu(svc AccountService, in io.Reader, out io.Writer, opts ...Option) *Menu {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	m := &Menu{
		svc:         svc,
		in:          sc,
		out:         out,
		validate:    newValidator(),
		logger:      slog.Default(),
		prompt:      "Enter your choice: ",
		showPrompts: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.render = NewRenderer(out, m.colored)
	return m
}

// Run loops until the exit choice or end of input, then releases every account.
func (m *Menu) Run(ctx context.Context) error {
	defer m.svc.Close()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m.showPrompts {
			m.render.Menu()
		}
		token, err := m.ask(m.prompt)
		if err != nil {
			return m.finish(err)
		}
		choice, err := parseInt(token)
		if err != nil {
			m.render.InvalidInput()
			continue
		}
		if choice == ChoiceExit {
			return m.finish(io.EOF)
		}

		err = m.dispatch(ctx, choice)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return m.finish(err)
		case errors.Is(err, ErrInvalidInput):
			m.logger.Debug("menu input rejected", "choice", choice, "error", err)
			m.render.InvalidInput()
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			m.render.Error(err)
		}
	}
}

// finish prints the exit line for a normal end of input and passes read errors through.
func (m *Menu) finish(err error) error {
	if !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}
	m.render.Exit()
	return nil
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case ChoiceCreateSavings:
		return m.createSavings(ctx)
	case ChoiceCreateChecking:
		return m.createChecking(ctx)
	case ChoiceCreateFixedDeposit:
		return m.createFixedDeposit(ctx)
	case ChoiceDeposit:
		return m.deposit(ctx)
	case ChoiceWithdraw:
		return m.withdraw(ctx)
	case ChoiceCalculateInterest:
		return m.calculateInterest(ctx)
	case ChoiceDisplayInfo:
		return m.displayInfo(ctx)
	case ChoiceListAccounts:
		m.render.List(m.svc.Accounts(ctx))
		return nil
	default:
		m.render.InvalidChoice()
		return nil
	}
}

// ask prints prompt when prompts are on and returns the next token.
func (m *Menu) ask(prompt string) (string, error) {
	if m.showPrompts {
		fmt.Fprint(m.out, prompt)
	}
	if m.in.Scan() {
		return m.in.Text(), nil
	}
	if err := m.in.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (m *Menu) askDecimal(prompt string) (decimal.Decimal, error) {
	token, err := m.ask(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimal(token)
}

func (m *Menu) askInt(prompt string) (int, error) {
	token, err := m.ask(prompt)
	if err != nil {
		return 0, err
	}
	return parseInt(token)
}

func (m *Menu) askOwner() (number, holder string, err error) {
	if number, err = m.ask("Enter Account Number: "); err != nil {
		return "", "", err
	}
	if holder, err = m.ask("Enter Account Holder Name: "); err != nil {
		return "", "", err
	}
	return number, holder, nil
}

// create registers the account or prints why it was refused.
func (m *Menu) create(ctx context.Context, number, holder string, v account.Variant) error {
	if _, err := m.svc.CreateAccount(ctx, number, holder, v); err != nil {
		return m.outcome(err, number)
	}
	return nil
}

func (m *Menu) createSavings(ctx context.Context) error {
	if m.svc.AtCapacity(ctx) {
		m.render.CapacityReached()
		return nil
	}
	number, holder, err := m.askOwner()
	if err != nil {
		return err
	}
	rate, err := m.askDecimal("Enter Interest Rate: ")
	if err != nil {
		return err
	}
	form := savingsForm{Number: number, Holder: holder, Rate: rate}
	if err := m.check(form); err != nil {
		return err
	}
	return m.create(ctx, form.Number, form.Holder, account.Savings{InterestRate: form.Rate})
}

func (m *Menu) createChecking(ctx context.Context) error {
	if m.svc.AtCapacity(ctx) {
		m.render.CapacityReached()
		return nil
	}
	number, holder, err := m.askOwner()
	if err != nil {
		return err
	}
	limit, err := m.askDecimal("Enter Overdraft Limit: ")
	if err != nil {
		return err
	}
	form := checkingForm{Number: number, Holder: holder, OverdraftLimit: limit}
	if err := m.check(form); err != nil {
		return err
	}
	return m.create(ctx, form.Number, form.Holder, account.Checking{OverdraftLimit: form.OverdraftLimit})
}

func (m *Menu) createFixedDeposit(ctx context.Context) error {
	if m.svc.AtCapacity(ctx) {
		m.render.CapacityReached()
		return nil
	}
	number, holder, err := m.askOwner()
	if err != nil {
		return err
	}
	term, err := m.askInt("Enter Term (in months): ")
	if err != nil {
		return err
	}
	rate, err := m.askDecimal("Enter Interest Rate: ")
	if err != nil {
		return err
	}
	form := fixedDepositForm{Number: number, Holder: holder, TermMonths: term, Rate: rate}
	if err := m.check(form); err != nil {
		return err
	}
	return m.create(ctx, form.Number, form.Holder, account.FixedDeposit{
		TermMonths:   form.TermMonths,
		InterestRate: form.Rate,
	})
}

func (m *Menu) askAmount(prompt string) (amountForm, error) {
	number, err := m.ask("Enter Account Number: ")
	if err != nil {
		return amountForm{}, err
	}
	amount, err := m.askDecimal(prompt)
	if err != nil {
		return amountForm{}, err
	}
	form := amountForm{Number: number, Amount: amount}
	return form, m.check(form)
}

func (m *Menu) deposit(ctx context.Context) error {
	form, err := m.askAmount("Enter Amount to Deposit: ")
	if err != nil {
		return err
	}
	entry, err := m.svc.Deposit(ctx, form.Number, form.Amount)
	if err != nil {
		return m.outcome(err, form.Number)
	}
	m.render.Deposited(entry)
	return nil
}

func (m *Menu) withdraw(ctx context.Context) error {
	form, err := m.askAmount("Enter Amount to Withdraw: ")
	if err != nil {
		return err
	}
	entry, err := m.svc.Withdraw(ctx, form.Number, form.Amount)
	if err != nil {
		return m.outcome(err, form.Number)
	}
	m.render.Withdrew(entry)
	return nil
}

func (m *Menu) calculateInterest(ctx context.Context) error {
	number, err := m.ask("Enter Account Number: ")
	if err != nil {
		return err
	}
	accrual, err := m.svc.CalculateInterest(ctx, number)
	if err != nil {
		return m.outcome(err, number)
	}
	m.render.InterestAdded(accrual)
	return nil
}

func (m *Menu) displayInfo(ctx context.Context) error {
	number, err := m.ask("Enter Account Number: ")
	if err != nil {
		return err
	}
	info, err := m.svc.DisplayAccountInfo(ctx, number)
	if err != nil {
		return m.outcome(err, number)
	}
	m.render.Info(info)
	return nil
}

// outcome renders soft refusals and returns anything else to Run.
func (m *Menu) outcome(err error, number string) error {
	if registry.IsSoft(err) {
		m.render.Outcome(err, number)
		return nil
	}
	return err
}
