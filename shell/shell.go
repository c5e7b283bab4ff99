// Package shell is the interactive front end: a readline loop for
// setting up boards, solving them and generating new ones.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/wordweave/wordweave/automatic"
	"github.com/wordweave/wordweave/board"
	"github.com/wordweave/wordweave/cache"
	"github.com/wordweave/wordweave/config"
	"github.com/wordweave/wordweave/puzzle"
	"github.com/wordweave/wordweave/solver"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curBoard    *board.Board
	curSolution *solver.Solution
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mwordweave>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "solve <letters> - solve a board; rows separated by spaces, e.g. solve tal rgo esn\n")
	io.WriteString(w, "load <path/to/puzzle.yaml> - load a puzzle definition and solve it\n")
	io.WriteString(w, "gen <width> <height> [maxwords] - generate a solvable board\n")
	io.WriteString(w, "show - show the current board and solution\n")
	io.WriteString(w, "exit - quit\n")
}

func (sc *ShellController) solveLetters(letters string) error {
	b, err := board.ParseRows(letters)
	if err != nil {
		return err
	}
	words, err := cache.Dictionary(sc.cfg, "")
	if err != nil {
		return err
	}
	p := &puzzle.Puzzle{Board: b, Words: words, MaxWords: sc.cfg.MaxWords}
	sol, err := p.Solve(context.Background(), sc.cfg.Threads)
	if err != nil {
		return err
	}
	sc.curBoard = b
	sc.curSolution = sol
	sc.showMessage(puzzle.Render(b, sol))
	return nil
}

func (sc *ShellController) loadDefinition(path string) error {
	def, err := puzzle.LoadDefinition(path)
	if err != nil {
		return err
	}
	p, err := def.Build()
	if err != nil {
		return err
	}
	sol, err := p.Solve(context.Background(), sc.cfg.Threads)
	if err != nil {
		return err
	}
	sc.curBoard = p.Board
	sc.curSolution = sol
	sc.showMessage(puzzle.Render(p.Board, sol))
	return nil
}

func (sc *ShellController) generate(fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("gen needs a width and a height")
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return err
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return err
	}
	maxWords := sc.cfg.MaxWords
	if len(fields) > 2 {
		if maxWords, err = strconv.Atoi(fields[2]); err != nil {
			return err
		}
	}
	words, err := cache.Dictionary(sc.cfg, "")
	if err != nil {
		return err
	}
	gen := automatic.NewGenerator(words, nil)
	b, placements, err := gen.Generate(w, h, maxWords)
	if err != nil {
		return err
	}
	sc.curBoard = b
	sc.curSolution = nil
	sc.showMessage(b.String())
	log.Debug().Int("words", len(placements)).Msg("generated in shell")
	return nil
}

func (sc *ShellController) show() {
	if sc.curBoard == nil {
		sc.showMessage("no board set; use solve, load or gen")
		return
	}
	sc.showMessage(sc.curBoard.String())
	if sc.curSolution != nil {
		sc.showMessage(strings.Join(sc.curSolution.Words(), " "))
	}
}

func (sc *ShellController) dispatch(line string, sig chan os.Signal) (quit bool) {
	switch {
	case line == "exit" || line == "bye":
		sig <- syscall.SIGINT
		return true
	case line == "help":
		usage(sc.l.Stderr())
	case line == "show":
		sc.show()
	case strings.HasPrefix(line, "solve "):
		if err := sc.solveLetters(strings.TrimPrefix(line, "solve ")); err != nil {
			sc.showError(err)
		}
	case strings.HasPrefix(line, "load "):
		if err := sc.loadDefinition(strings.TrimSpace(strings.TrimPrefix(line, "load "))); err != nil {
			sc.showError(err)
		}
	case strings.HasPrefix(line, "gen "):
		if err := sc.generate(strings.Fields(strings.TrimPrefix(line, "gen "))); err != nil {
			sc.showError(err)
		}
	case line == "":
	default:
		log.Debug().Msgf("you said: %v", strconv.Quote(line))
		sc.showMessage("unknown command; try help")
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if sc.dispatch(strings.TrimSpace(line), sig) {
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute runs a single command line, for non-interactive use.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	sc.dispatch(strings.TrimSpace(line), sig)
}
