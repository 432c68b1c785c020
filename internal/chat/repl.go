package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

const (
	userPrompt     = "\n您: "
	continuePrompt = "是否继续？(y/n): "
	ruleWidth      = 50

	// maxLineSize bounds a single input line.
	maxLineSize = 1 << 20
)

var (
	quitCommands    = []string{"quit", "exit", "退出"}
	resetCommands   = []string{"new", "新对话"}
	continueAnswers = []string{"y", "yes", "是"}
)

// REPL runs an interactive conversation: one line in, one reply out.
type REPL struct {
	responder Responder
	session   *Session
	in        io.Reader
	out       io.Writer
	stream    bool

	lines   <-chan string
	readErr <-chan error
}

// REPLConfig holds REPL configuration.
type REPLConfig struct {
	Responder Responder
	Session   *Session
	In        io.Reader
	Out       io.Writer

	// Stream means the responder writes reply text itself.
	Stream bool
}

// NewREPL creates a new REPL reading lines from cfg.In.
func NewREPL(cfg REPLConfig) *REPL {
	session := cfg.Session
	if session == nil {
		session = NewSession("")
	}

	return &REPL{
		responder: cfg.Responder,
		session:   session,
		in:        cfg.In,
		out:       cfg.Out,
		stream:    cfg.Stream,
	}
}

// Session returns the REPL's conversation state.
func (r *REPL) Session() *Session {
	return r.session
}

// readLines feeds lines from in to a channel so reads can be abandoned when
// ctx is cancelled. The lines channel is closed at end of input; a read
// failure is sent on the error channel first.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}

// Run loops until a quit command, end of input or ctx cancellation. A failure
// to read input is reported and returned.
func (r *REPL) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.lines, r.readErr = readLines(ctx, r.in)

	fmt.Fprintln(r.out, "输入 'quit' 或 'exit' 退出程序")
	fmt.Fprintln(r.out, "输入 'new' 开始新对话")
	fmt.Fprintln(r.out, strings.Repeat("-", ruleWidth))

	for {
		fmt.Fprint(r.out, userPrompt)

		line, err := r.readLine(ctx)
		if err != nil {
			return r.stop(ctx, err)
		}

		input := strings.TrimSpace(line)
		command := strings.ToLower(input)

		switch {
		case slices.Contains(quitCommands, command):
			fmt.Fprintln(r.out, "再见！")
			return nil
		case slices.Contains(resetCommands, command):
			r.session.Reset()
			fmt.Fprintln(r.out, "开始新对话")
			continue
		case input == "":
			continue
		}

		if err := r.exchange(ctx, input); err != nil {
			slog.Debug("exchange failed", "error", err)
			fmt.Fprintf(r.out, "\n发生错误: %v\n", err)
			fmt.Fprintln(r.out, "请检查您的API密钥和网络连接")

			if ctx.Err() != nil {
				return r.stop(ctx, ctx.Err())
			}

			fmt.Fprint(r.out, continuePrompt)
			answer, err := r.readLine(ctx)
			if err != nil {
				return r.stop(ctx, err)
			}
			if !slices.Contains(continueAnswers, strings.ToLower(strings.TrimSpace(answer))) {
				return nil
			}
		}
	}
}

// stop ends the loop after readLine or an exchange returned err. End of
// input and cancellation end it cleanly; read failures are returned.
func (r *REPL) stop(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		fmt.Fprintln(r.out, "\n\n程序被用户中断")
		return nil
	case errors.Is(err, io.EOF):
		fmt.Fprintln(r.out, "\n再见！")
		return nil
	default:
		fmt.Fprintf(r.out, "\n读取输入失败: %v\n", err)
		return fmt.Errorf("read input: %w", err)
	}
}

func (r *REPL) exchange(ctx context.Context, input string) error {
	fmt.Fprintln(r.out, "AI正在思考...")

	var w io.Writer
	if r.stream {
		fmt.Fprint(r.out, "\nAI: ")
		w = r.out
	}

	reply, err := r.responder.Respond(ctx, r.session.Request(input), w)
	if err != nil {
		return err
	}
	r.session.Advance(reply)

	if r.stream {
		fmt.Fprintln(r.out)
	}
	fmt.Fprintf(r.out, "使用模型: %s\n", reply.Model)
	fmt.Fprintf(r.out, "对话ID: %s\n", reply.ID)
	if !r.stream {
		fmt.Fprintf(r.out, "\nAI: %s\n", reply.Text)
	}
	return nil
}

// readLine returns the next input line, io.EOF at end of input, the read
// error if reading failed, or ctx.Err() on cancellation.
func (r *REPL) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-r.lines:
		if ok {
			return line, nil
		}
		select {
		case err := <-r.readErr:
			return "", err
		default:
			return "", io.EOF
		}
	}
}
