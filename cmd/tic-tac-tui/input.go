package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/EvilSpudBoy/tic-tac-tui/engine"
)

// terminalInput puts the controlling terminal into raw mode for single
// keystroke command entry, restoring cooked mode whenever a full
// coordinate line needs to be read. Raw mode lets the player pick an
// action kind with one keystroke instead of typing and pressing enter
// every time.
type terminalInput struct {
	fd       int
	oldState *term.State
	reader   *bufio.Reader
}

func newTerminalInput() *terminalInput {
	return &terminalInput{fd: int(os.Stdin.Fd()), reader: bufio.NewReader(os.Stdin)}
}

func (t *terminalInput) enterRaw() error {
	if !term.IsTerminal(t.fd) {
		return nil
	}
	old, err := term.MakeRaw(t.fd)
	if err != nil {
		return err
	}
	t.oldState = old
	return nil
}

func (t *terminalInput) restore() {
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// readCommandByte reads a single keystroke in raw mode.
func (t *terminalInput) readCommandByte() (byte, error) {
	if err := t.enterRaw(); err != nil {
		return 0, err
	}
	defer t.restore()
	b, err := t.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, nil
}

// readLine restores cooked mode (raw mode is only ever entered around a
// single readCommandByte call, so this is mostly a no-op guard) and reads
// a full line, e.g. a cell coordinate like "B3".
func (t *terminalInput) readLine(prompt string) (string, error) {
	t.restore()
	fmt.Print(prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseCell parses a coordinate like "B3" (row letter A-E, column 1-5)
// into a board index.
func parseCell(raw string) (int, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if len(raw) < 2 {
		return 0, fmt.Errorf("cell must look like B3, got %q", raw)
	}
	row := int(raw[0] - 'A')
	col, err := strconv.Atoi(raw[1:])
	if err != nil {
		return 0, fmt.Errorf("cell must look like B3, got %q", raw)
	}
	col--
	if row < 0 || row >= engine.BoardSize || col < 0 || col >= engine.BoardSize {
		return 0, fmt.Errorf("cell %q out of range", raw)
	}
	return row*engine.BoardSize + col, nil
}

// promptAction asks the human player for one action, looping until a
// syntactically valid one is entered. It does not check game legality;
// the caller applies it through engine.Apply and re-prompts on failure.
func promptAction(t *terminalInput) (engine.Action, error) {
	for {
		fmt.Println("[p]lace  [m]ove  [s]hift  [q]uit")
		b, err := t.readCommandByte()
		if err != nil {
			return engine.Action{}, err
		}
		switch b {
		case 'p', 'P':
			line, err := t.readLine("cell (e.g. B3): ")
			if err != nil {
				return engine.Action{}, err
			}
			idx, err := parseCell(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			return engine.Place(idx), nil
		case 'm', 'M':
			from, err := t.readLine("from cell: ")
			if err != nil {
				return engine.Action{}, err
			}
			to, err := t.readLine("to cell: ")
			if err != nil {
				return engine.Action{}, err
			}
			fi, err := parseCell(from)
			if err != nil {
				fmt.Println(err)
				continue
			}
			ti, err := parseCell(to)
			if err != nil {
				fmt.Println(err)
				continue
			}
			return engine.MoveAction(fi, ti), nil
		case 's', 'S':
			line, err := t.readLine("dx dy (e.g. 1 0): ")
			if err != nil {
				return engine.Action{}, err
			}
			fields := strings.Fields(line)
			if len(fields) != 2 {
				fmt.Println("expected two values, e.g. 1 0")
				continue
			}
			dx, err1 := strconv.Atoi(fields[0])
			dy, err2 := strconv.Atoi(fields[1])
			if err1 != nil || err2 != nil {
				fmt.Println("dx and dy must be integers in {-1,0,1}")
				continue
			}
			return engine.Shift(dx, dy), nil
		case 'q', 'Q':
			return engine.Action{}, errQuit
		default:
			continue
		}
	}
}

var errQuit = fmt.Errorf("quit requested")
