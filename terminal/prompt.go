package terminal

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchMarker prefixes the highlighted match in Search
const searchMarker = "> "

// Ask writes prefix and reads a line of input, ended by Enter
func (t *Terminal) Ask(prefix string) (string, error) {
	return t.readLine(prefix, 0)
}

// Mask reads a line like Ask but displays mask for every typed rune.
// A zero mask uses the configured mask rune.
func (t *Terminal) Mask(prefix string, mask rune) (string, error) {
	if mask == 0 {
		mask = t.cfg.MaskRune()
	}
	return t.readLine(prefix, mask)
}

func (t *Terminal) readLine(prefix string, mask rune) (string, error) {
	if err := t.Out(prefix); err != nil {
		return "", err
	}

	field := NewLayer(t.x, t.y)
	var value []rune
	for {
		ev, err := t.GetCharHidden()
		if err != nil {
			return "", err
		}

		switch ev.Key {
		case KeyEnter:
			return string(value), nil
		case KeyInterrupt:
			return "", ErrInterrupted
		case KeyBackspace:
			if len(value) == 0 {
				continue
			}
			value = value[:len(value)-1]
		case KeyRune:
			value = append(value, ev.Rune)
		default:
			continue
		}

		shown := string(value)
		if mask != 0 {
			shown = strings.Repeat(string(mask), len(value))
		}
		field.SetContent(shown)
		t.DrawLayer(&field)
	}
}

// YesNo asks a yes/no question. suffix names both answers separated by '/',
// e.g. "y/n"; the highlighted answer is shown upper-case as in "(Y/n)".
// Left selects yes, Right selects no, Enter confirms.
func (t *Terminal) YesNo(suffix string, def bool) (bool, error) {
	parts := strings.Split(suffix, "/")
	if len(parts) < 2 {
		return def, ErrYesNoSuffix
	}
	if t.closed {
		return def, ErrClosed
	}
	yes, no := parts[0], parts[1]

	field := NewLayer(t.x, t.y)
	choice := def
	// The caller's casing is kept until the first toggle
	if def {
		yes = strings.ToUpper(yes)
	} else {
		no = strings.ToUpper(no)
	}
	render := func() {
		field.SetContent("(" + yes + "/" + no + ")")
		t.DrawLayer(&field)
	}
	render()

	for {
		ev, err := t.GetCharHidden()
		if err != nil {
			return def, err
		}

		switch ev.Key {
		case KeyEnter:
			return choice, nil
		case KeyInterrupt:
			return def, ErrInterrupted
		case KeyLeft:
			choice = true
		case KeyRight:
			choice = false
		default:
			continue
		}
		if choice {
			yes, no = strings.ToUpper(yes), strings.ToLower(no)
		} else {
			yes, no = strings.ToLower(yes), strings.ToUpper(no)
		}
		render()
	}
}

// Choices lists options on the lines below the cursor and lets the user
// move prefix between them with Up and Down. Enter returns the chosen option.
func (t *Terminal) Choices(prefix string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	if err := t.OutBr(); err != nil {
		return "", err
	}
	t.reserve(len(options))

	items := make([]Layer, len(options))
	for i, opt := range options {
		items[i] = NewLayer(t.x, t.y+i)
		items[i].Inner = opt
	}

	sel := 0
	render := func() {
		for i := range items {
			if i == sel {
				items[i].SetContent(prefix + items[i].Inner)
			} else {
				items[i].InnerToOuter()
			}
			t.DrawLayerStatic(&items[i])
		}
	}
	render()
	t.MoveOffset(0, len(items))

	for {
		ev, err := t.GetCharHidden()
		if err != nil {
			return "", err
		}

		switch ev.Key {
		case KeyEnter:
			return options[sel], nil
		case KeyInterrupt:
			return "", ErrInterrupted
		case KeyDown:
			if sel < len(items)-1 {
				sel++
			}
		case KeyUp:
			if sel > 0 {
				sel--
			}
		default:
			continue
		}
		render()
	}
}

// Search writes prefix and reads a query; options fuzzy-matching the query
// are listed below it, best match first. Up and Down move the highlight and
// Enter returns the highlighted option. The list is cleared on return.
func (t *Terminal) Search(prefix string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoChoices
	}
	if t.closed {
		return "", ErrClosed
	}

	_, h := t.screen.Size()
	rows := len(options)
	if rows > h-1 {
		rows = h - 1
	}
	t.reserve(rows + 1)
	if err := t.Out(prefix); err != nil {
		return "", err
	}

	query := NewLayer(t.x, t.y)
	list := make([]Layer, rows)
	for i := range list {
		list[i] = NewLayer(0, t.y+1+i)
	}
	defer func() {
		for i := range list {
			list[i].SetContent("")
			t.DrawLayerStatic(&list[i])
		}
		t.show()
	}()

	var input []rune
	matches := searchMatches("", options)
	sel := 0
	render := func() {
		for i := range list {
			line := ""
			if i < len(matches) {
				pad := strings.Repeat(" ", len(searchMarker))
				if i == sel {
					pad = searchMarker
				}
				line = pad + options[matches[i]]
			}
			list[i].SetContent(line)
			t.DrawLayerStatic(&list[i])
		}
		query.SetContent(string(input))
		t.DrawLayer(&query)
	}
	render()

	for {
		ev, err := t.GetCharHidden()
		if err != nil {
			return "", err
		}

		switch ev.Key {
		case KeyEnter:
			if len(matches) == 0 {
				continue
			}
			return options[matches[sel]], nil
		case KeyInterrupt:
			return "", ErrInterrupted
		case KeyDown:
			if sel < len(matches)-1 && sel < rows-1 {
				sel++
			}
		case KeyUp:
			if sel > 0 {
				sel--
			}
		case KeyBackspace:
			if len(input) == 0 {
				continue
			}
			input = input[:len(input)-1]
			matches = searchMatches(string(input), options)
			sel = 0
		case KeyRune:
			input = append(input, ev.Rune)
			matches = searchMatches(string(input), options)
			sel = 0
		default:
			continue
		}
		render()
	}
}

// searchMatches returns option indices matching query, best first.
// An empty query matches every option in order.
func searchMatches(query string, options []string) []int {
	if query == "" {
		idx := make([]int, len(options))
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	found := fuzzy.Find(query, options)
	idx := make([]int, len(found))
	for i, m := range found {
		idx[i] = m.Index
	}
	return idx
}
