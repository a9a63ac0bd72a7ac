package panel

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/inkwell/pkg/cli"
	"github.com/inkwell/pkg/portal"
	"golang.org/x/term"
)

type Menu struct {
	Choice    *int
	Reader    *bufio.Reader
	Validator *portal.Validator
}

type AuthorInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

func MakeMenu() Menu {
	menu := Menu{
		Reader:    bufio.NewReader(os.Stdin),
		Validator: portal.GetDefaultValidator(),
	}

	menu.Print()

	return menu
}

func (p *Menu) PrintLine() {
	_, _ = p.Reader.ReadString('\n')
}

func (p *Menu) GetChoice() int {
	if p.Choice == nil {
		return 0
	}

	return *p.Choice
}

func (p *Menu) CaptureInput() error {
	fmt.Print(cli.YellowColour + "Select an option: " + cli.Reset)
	input, err := p.Reader.ReadString('\n')

	if err != nil {
		return fmt.Errorf("%s error reading input: %v %s", cli.RedColour, err, cli.Reset)
	}

	input = strings.TrimSpace(input)
	choice, err := strconv.Atoi(input)

	if err != nil {
		return fmt.Errorf("%s Please enter a valid number. %s", cli.RedColour, cli.Reset)
	}

	p.Choice = &choice

	return nil
}

func (p *Menu) Print() {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))

	if err != nil || width < 20 {
		width = 80
	}

	inner := width - 2

	border := "╔" + strings.Repeat("═", inner) + "╗"
	title := "║" + p.CenterText(" Main Menu ", inner) + "║"
	divider := "╠" + strings.Repeat("═", inner) + "╣"
	footer := "╚" + strings.Repeat("═", inner) + "╝"

	fmt.Println()
	fmt.Println(cli.CyanColour + border)
	fmt.Println(title)
	fmt.Println(divider)

	p.PrintOption("1) Create author", inner)
	p.PrintOption("2) Show author", inner)
	p.PrintOption("3) Issue author token", inner)
	p.PrintOption("4) Run migrations", inner)
	p.PrintOption("5) Seed sample data", inner)
	p.PrintOption("0) Exit", inner)

	fmt.Println(footer + cli.Reset)
}

// PrintOption left-pads a space, writes the text, then fills to the full inner width.
func (p *Menu) PrintOption(text string, inner int) {
	content := " " + text

	if len(content) > inner {
		content = content[:inner]
	}

	padding := inner - len(content)
	fmt.Printf("║%s%s║\n", content, strings.Repeat(" ", padding))
}

// CenterText centers s within width, padding with spaces.
func (p *Menu) CenterText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}

	pad := width - len(s)
	left := pad / 2
	right := pad - left

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func (p *Menu) CaptureAuthorName() (string, error) {
	fmt.Print("Enter the author name: ")

	name, err := p.Reader.ReadString('\n')

	if err != nil {
		return "", fmt.Errorf("%sError reading the author name: %v %s", cli.RedColour, err, cli.Reset)
	}

	input := AuthorInput{Name: strings.TrimSpace(name)}

	if p.Validator == nil {
		p.Validator = portal.GetDefaultValidator()
	}

	if _, err := p.Validator.Rejects(input); err != nil {
		return "", fmt.Errorf(
			"%sError validating the given author name: %v %s \n%sViolations:%s %s",
			cli.RedColour,
			err,
			cli.Reset,
			cli.BlueColour,
			cli.Reset,
			p.Validator.GetErrorsAsJson(),
		)
	}

	return input.Name, nil
}

func (p *Menu) CaptureAuthorSlug() (string, error) {
	fmt.Print("Enter the author slug: ")

	slug, err := p.Reader.ReadString('\n')

	if err != nil {
		return "", fmt.Errorf("%sError reading the author slug: %v %s", cli.RedColour, err, cli.Reset)
	}

	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return "", fmt.Errorf("%sError: no author slug provided %s", cli.RedColour, cli.Reset)
	}

	return slug, nil
}
