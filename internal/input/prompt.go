package input

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

var keywords = []string{"PLACE", "MOVE", "LEFT", "RIGHT", "REPORT"}

// PromptSource reads commands typed at an interactive prompt.
type PromptSource struct {
	rl *readline.Instance
}

// NewPromptSource starts a readline prompt on in/out. Nil streams fall back
// to the process stdin/stdout.
func NewPromptSource(prompt string, in io.ReadCloser, out io.Writer) (*PromptSource, error) {
	items := make([]readline.PrefixCompleterInterface, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, readline.PcItem(kw))
	}

	cfg := &readline.Config{
		Prompt:          prompt,
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    500,
	}
	if in != nil {
		// Raw mode belongs to the process terminal, not to a supplied stream.
		cfg.Stdin = in
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}
	if out != nil {
		cfg.Stdout = out
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "start prompt")
	}
	return &PromptSource{rl: rl}, nil
}

// Next blocks for the next line. Ctrl+D, or Ctrl+C on an empty line, ends
// the input; Ctrl+C with text discards what was typed.
func (s *PromptSource) Next() (string, error) {
	for {
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		if err != nil {
			return "", err
		}
		return line, nil
	}
}

func (s *PromptSource) Close() error {
	return s.rl.Close()
}
