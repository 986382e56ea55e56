package main

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/termline/terminal"
)

var demos = map[string]func(*terminal.Terminal) error{
	"hello":   demoHello,
	"ask":     demoAsk,
	"mask":    demoMask,
	"yesno":   demoYesNo,
	"choices": demoChoices,
	"search":  demoSearch,
	"layers":  demoLayers,
	"delete":  demoDelete,
}

func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// run plays the named demo and waits for a key before returning
func run(t *terminal.Terminal, name string) error {
	demo, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown demo %q", name)
	}
	if err := demo(t); err != nil {
		return err
	}
	return pause(t)
}

func pause(t *terminal.Terminal) error {
	if err := t.Out("Press any key to exit"); err != nil {
		return err
	}
	_, err := t.GetCharHidden()
	return err
}

func demoHello(t *terminal.Terminal) error {
	if err := t.OutLn("Hello world!"); err != nil {
		return err
	}
	return t.Beep()
}

func demoAsk(t *terminal.Terminal) error {
	name, err := t.Ask("Name: ")
	if err != nil {
		return err
	}
	if err := t.OutBr(); err != nil {
		return err
	}
	return t.OutLn("Hello, " + name + "!")
}

func demoMask(t *terminal.Terminal) error {
	secret, err := t.Mask("Password: ", 0)
	if err != nil {
		return err
	}
	if err := t.OutBr(); err != nil {
		return err
	}
	return t.OutLn(fmt.Sprintf("Read %d characters", len([]rune(secret))))
}

func demoYesNo(t *terminal.Terminal) error {
	if err := t.Out("Continue? "); err != nil {
		return err
	}
	yes, err := t.YesNo("y/n", true)
	if err != nil {
		return err
	}
	if err := t.OutBr(); err != nil {
		return err
	}
	return t.OutLn(fmt.Sprintf("Answer: %t", yes))
}

func demoChoices(t *terminal.Terminal) error {
	if err := t.Out("Pick a color:"); err != nil {
		return err
	}
	color, err := t.Choices("-> ", []string{"red", "green", "blue"})
	if err != nil {
		return err
	}
	return t.OutLn("Picked " + color)
}

func demoSearch(t *terminal.Terminal) error {
	langs := []string{"c", "go", "haskell", "javascript", "python", "rust", "zig"}
	lang, err := t.Search("Language: ", langs)
	if err != nil {
		return err
	}
	if err := t.OutBr(); err != nil {
		return err
	}
	return t.OutLn("Found " + lang)
}

// demoLayers stacks a title and a checkerboard, then flips one cell
func demoLayers(t *terminal.Terminal) error {
	title := terminal.NewLayer(0, 0)
	title.SetContent("Layers")
	t.AddLayer(title)

	cell := terminal.NewLayer(0, 0)
	cell.SetContent("..")
	grid := t.AddLayer2D(terminal.NewLayer2D(0, 2, 8, 4, cell))
	for y := 0; y < grid.Rows; y++ {
		for x := (y % 2); x < grid.Cols; x += 2 {
			grid.At(x, y).SetContent("##")
		}
	}
	if err := t.Refresh(); err != nil {
		return err
	}

	grid.At(1, 0).SetContent("@@")
	t.Move(0, grid.Y+grid.Rows+1)
	return t.Refresh()
}

func demoDelete(t *terminal.Terminal) error {
	if err := t.Out("Hello world!"); err != nil {
		return err
	}
	t.DeleteOffset(-6)
	if err := t.Out("there"); err != nil {
		return err
	}
	t.DeleteFrom(6)
	t.MoveOffset(len("there"), 0)
	return t.OutBr()
}
