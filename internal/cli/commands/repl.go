package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlkit/pkg/dialect"
	"github.com/leapstack-labs/sqlkit/pkg/keyword"
	"github.com/leapstack-labs/sqlkit/pkg/parser"
)

const (
	replPrompt     = "sqlkit> "
	replContPrompt = "   ...> "
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse SQL interactively",
		Long: `Start an interactive session. Statements accumulate until a line ends
with a semicolon, then they are parsed and echoed in canonical form.

Dot commands change the session: .dialect <name>, .tokens, .help, .quit.`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	historyFile := ""
	if dir, err := os.UserCacheDir(); err == nil {
		historyFile = filepath.Join(dir, "sqlkit", "repl_history")
		_ = os.MkdirAll(filepath.Dir(historyFile), 0o750)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newKeywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	s := newReplSession(cc)
	r := cc.Renderer
	r.Printf("sqlkit REPL (dialect: %s)\n", s.dialect.Name())
	r.Println("Type .help for commands, .quit to exit")
	r.Println()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.handleLine(line) {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

// replSession is the state of an interactive session, independent of the
// terminal so it can be driven line by line.
type replSession struct {
	cc         *CommandContext
	dialect    *dialect.Dialect
	showTokens bool
	buf        strings.Builder
}

func newReplSession(cc *CommandContext) *replSession {
	return &replSession{cc: cc, dialect: cc.Dialect}
}

func (s *replSession) reset() {
	s.buf.Reset()
}

func (s *replSession) prompt() string {
	if s.buf.Len() > 0 {
		return replContPrompt
	}
	return replPrompt
}

// handleLine processes one input line and reports whether the session
// should end.
func (s *replSession) handleLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if s.buf.Len() == 0 && strings.HasPrefix(trimmed, ".") {
		return s.dotCommand(trimmed)
	}

	if s.buf.Len() > 0 {
		s.buf.WriteString("\n")
	}
	s.buf.WriteString(line)
	if !strings.HasSuffix(trimmed, ";") {
		return false
	}
	src := s.buf.String()
	s.buf.Reset()
	s.evaluate(src)
	return false
}

func (s *replSession) evaluate(src string) {
	r := s.cc.Renderer
	if s.showTokens {
		toks, err := parser.NewTokenizer(s.dialect, src).WithUnescape(s.cc.Cfg.Unescape).Tokenize()
		if err != nil {
			r.Diagnostic("", src, err)
			return
		}
		renderTokens(r.Out(), toks)
	}
	stmts, err := s.cc.Cfg.NewParser(s.dialect).ParseSQL(src)
	if err != nil {
		r.Diagnostic("", src, err)
		return
	}
	renderSQL(r.Out(), stmts)
}

func (s *replSession) dotCommand(line string) bool {
	r := s.cc.Renderer
	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return true
	case ".help":
		printREPLHelp(r.Out())
	case ".dialect":
		if len(parts) < 2 {
			r.Printf("dialect: %s (available: %s)\n", s.dialect.Name(), strings.Join(dialect.List(), ", "))
			return false
		}
		d, err := dialect.Lookup(parts[1])
		if err != nil {
			r.Warnf("%v", err)
			return false
		}
		s.dialect = d
		r.Printf("dialect: %s\n", d.Name())
	case ".tokens":
		s.showTokens = !s.showTokens
		state := "off"
		if s.showTokens {
			state = "on"
		}
		r.Printf("token display %s\n", state)
	default:
		r.Warnf("Unknown command: %s (type .help for commands)", parts[0])
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .dialect [name]  Show or switch the dialect
  .tokens          Toggle printing the token stream
  .quit / .exit    Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Use arrow keys to navigate history
  - Tab completes keywords and dot commands
`
	_, _ = fmt.Fprintln(w, help)
}

// keywordCompleter completes the word before the cursor from the keyword
// table, or a dot command at the start of the line.
type keywordCompleter struct {
	words []string
	dots  []string
}

var _ readline.AutoCompleter = (*keywordCompleter)(nil)

func newKeywordCompleter() *keywordCompleter {
	c := &keywordCompleter{dots: []string{".dialect", ".exit", ".help", ".quit", ".tokens"}}
	for _, kw := range keyword.All() {
		c.words = append(c.words, kw.String())
	}
	sort.Strings(c.words)
	return c
}

// Do implements readline.AutoCompleter. It returns the suffixes that
// complete the current word and the length of the word.
func (c *keywordCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && isWordRune(line[start-1]) {
		start--
	}
	if start == 1 && line[0] == '.' {
		start = 0
	}
	word := string(line[start:pos])
	if word == "" {
		return nil, 0
	}

	candidates := c.words
	if strings.HasPrefix(word, ".") {
		candidates = c.dots
	}

	upper := strings.ToUpper(word)
	lower := word == strings.ToLower(word) && !strings.HasPrefix(word, ".")
	var out [][]rune
	for _, cand := range candidates {
		if !strings.HasPrefix(strings.ToUpper(cand), upper) {
			continue
		}
		suffix := cand[len(word):]
		if lower {
			suffix = strings.ToLower(suffix)
		}
		out = append(out, []rune(suffix))
	}
	return out, len([]rune(word))
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
