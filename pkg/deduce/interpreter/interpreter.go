// Package interpreter turns English sentences into calls on a categorical
// reasoner: "all X are Y" teaches, "are all X Y?" asks.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cognicore/deduce/pkg/deduce/inference"
	"github.com/cognicore/deduce/pkg/deduce/internalerr"
	"github.com/cognicore/deduce/pkg/deduce/transcript"
)

// ReplyKind classifies a reply
type ReplyKind string

const (
	ReplyHelp     ReplyKind = "help"
	ReplyNouns    ReplyKind = "nouns"
	ReplyTeach    ReplyKind = "teach"
	ReplyQuery    ReplyKind = "query"
	ReplyExplain  ReplyKind = "explain"
	ReplyRejected ReplyKind = "rejected"
	ReplyUnknown  ReplyKind = "unknown"
)

// Reply is the answer to one line of input
type Reply struct {
	Kind ReplyKind
	Text string
}

// Interpreter executes sentences against a reasoner. It serializes access
// to the reasoner, so one Interpreter may be shared between goroutines.
type Interpreter struct {
	mu         sync.Mutex
	reasoner   inference.Reasoner
	transcript transcript.Store
	ids        *transcript.IDs
	logger     *zap.Logger
	now        func() time.Time
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(in *Interpreter) {
		if l != nil {
			in.logger = l
		}
	}
}

// WithTranscript records every exchange in s
func WithTranscript(s transcript.Store) Option {
	return func(in *Interpreter) {
		in.transcript = s
	}
}

// New creates an interpreter over r
func New(r inference.Reasoner, opts ...Option) *Interpreter {
	in := &Interpreter{
		reasoner: r,
		ids:      transcript.NewIDs(),
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Exec interprets one line. Sentences the interpreter cannot parse produce
// a ReplyUnknown reply, not an error.
func (in *Interpreter) Exec(ctx context.Context, line string) (Reply, error) {
	in.mu.Lock()
	defer in.mu.Unlock()

	input := strings.ToLower(strings.TrimSpace(line))
	reply, err := in.dispatch(input)
	if err != nil {
		return Reply{}, err
	}

	in.record(ctx, strings.TrimSpace(line), reply)
	return reply, nil
}

func (in *Interpreter) dispatch(input string) (Reply, error) {
	switch {
	case matchHelp.MatchString(input):
		return Reply{Kind: ReplyHelp, Text: helpText}, nil

	case matchNouns.MatchString(input):
		nouns := in.reasoner.Nouns()
		if len(nouns) == 0 {
			return Reply{Kind: ReplyNouns, Text: replyNoNouns}, nil
		}
		return Reply{Kind: ReplyNouns, Text: strings.Join(nouns, " ")}, nil

	case matchExplain.MatchString(input):
		m := matchExplain.FindStringSubmatch(input)
		s, ok := parseQuery(m[1], in.reasoner.HasNoun)
		if !ok {
			break
		}
		return Reply{Kind: ReplyExplain, Text: strings.TrimRight(in.reasoner.Explain(s), "\n")}, nil

	case matchQuery.MatchString(input):
		s, ok := parseQuery(input, in.reasoner.HasNoun)
		if !ok {
			break
		}
		answer := in.reasoner.Ask(s)
		in.logger.Debug("Answered query", zap.Stringer("statement", s), zap.Bool("answer", answer))
		return Reply{Kind: ReplyQuery, Text: strconv.FormatBool(answer)}, nil

	case matchTeach.MatchString(input):
		s, _ := parseTeach(input)
		return in.teach(s)
	}

	return Reply{Kind: ReplyUnknown, Text: replyNotUnderstood}, nil
}

func (in *Interpreter) teach(s inference.Statement) (Reply, error) {
	for _, n := range []string{s.Subject, s.Predicate} {
		if err := in.reasoner.AddNoun(n); err != nil {
			return Reply{}, fmt.Errorf("teach %q: %w", s, err)
		}
	}

	if err := in.reasoner.Teach(s); err != nil {
		if errors.Is(err, internalerr.ErrContradiction) {
			in.logger.Info("Rejected contradiction", zap.Stringer("statement", s), zap.Error(err))
			return Reply{Kind: ReplyRejected, Text: replyContradicts}, nil
		}
		return Reply{}, err
	}
	return Reply{Kind: ReplyTeach, Text: replyOkay}, nil
}

// record appends the exchange to the transcript. Failures are logged only.
func (in *Interpreter) record(ctx context.Context, line string, reply Reply) {
	if in.transcript == nil || line == "" {
		return
	}

	at := in.now()
	ex := transcript.Exchange{
		ID:    in.ids.Next(at),
		Line:  line,
		Kind:  string(reply.Kind),
		Reply: reply.Text,
		At:    at,
	}
	if err := in.transcript.Append(ctx, ex); err != nil {
		in.logger.Warn("Failed to record exchange", zap.String("line", line), zap.Error(err))
	}
}
