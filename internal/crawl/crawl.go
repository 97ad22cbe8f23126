// Package crawl walks a target program's subcommand tree by invoking
// its --help output at every nesting level and assembling the parsed
// lines into a CLI Structure Tree.
//
// The crawl is single-threaded and depth-first: one child process at a
// time, siblings strictly sequential. Termination is guaranteed by two
// guards: a hard depth cap and a visited set keyed by the exact
// invocation string, which defuses programs whose help reports an
// already-visited command (cyclical aliases, self-references).
package crawl

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/schmitthub/cliscope/internal/cst"
	"github.com/schmitthub/cliscope/internal/helptext"
	"github.com/schmitthub/cliscope/internal/logger"
	"github.com/schmitthub/cliscope/internal/probe"
	"github.com/schmitthub/cliscope/internal/text"
)

// DefaultMaxDepth is the number of levels below the root that are still
// probed. Commands discovered beyond the cap are recorded as leaves.
const DefaultMaxDepth = 5

// Prober runs one probe invocation. Implemented by *probe.Runner for
// real subprocesses and by scripted fakes in tests.
type Prober interface {
	Probe(ctx context.Context, fullCommand string) probe.Result
}

// Crawler builds a CLI Structure Tree for one target program. A Crawler
// is single-use: the visited set spans one Crawl call.
type Crawler struct {
	prober   Prober
	maxDepth int
	visited  map[string]struct{}
	crawlID  string
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithMaxDepth overrides the recursion depth cap.
func WithMaxDepth(depth int) Option {
	return func(c *Crawler) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// New returns a Crawler that probes through p.
func New(p Prober, opts ...Option) *Crawler {
	c := &Crawler{
		prober:   p,
		maxDepth: DefaultMaxDepth,
		visited:  map[string]struct{}{},
		crawlID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Crawl probes program's help and version output and recursively walks
// every discovered subcommand. It always returns a tree: probe failures
// truncate the affected subtree but never abort the crawl.
func (c *Crawler) Crawl(ctx context.Context, program string) *cst.Node {
	logger.Info().
		Str("crawl_id", c.crawlID).
		Str("program", program).
		Int("max_depth", c.maxDepth).
		Msg("starting crawl")

	root := &cst.Node{
		Name:        program,
		Version:     c.programVersion(ctx, program),
		CommandPath: program,
		Children:    cst.NewChildren(),
	}

	help := c.probe(ctx, program+" --help")
	root.Outputs = &cst.Outputs{HelpPage: helpPage(help)}

	description, children := c.parseHelp(ctx, program, help.Stdout, 0, program)
	root.Description = description
	root.Children = children

	logger.Info().
		Str("crawl_id", c.crawlID).
		Str("program", program).
		Int("commands_probed", len(c.visited)).
		Msg("crawl finished")

	return root
}

// programVersion invokes "<program> version" once, best-effort.
func (c *Crawler) programVersion(ctx context.Context, program string) string {
	result := c.probe(ctx, program+" version")
	if version := strings.TrimSpace(result.Stdout); version != "" {
		return version
	}
	return "Unknown"
}

func (c *Crawler) probe(ctx context.Context, fullCommand string) probe.Result {
	result := c.prober.Probe(ctx, fullCommand)
	logger.Debug().
		Str("crawl_id", c.crawlID).
		Str("command", fullCommand).
		Int("status", result.Status).
		Msg("probed")
	return result
}

// parseHelp classifies one help page line by line and recurses into
// discovered subcommands. command is the full invocation string of the
// node being parsed, commandPath the human-readable path from the root.
func (c *Crawler) parseHelp(ctx context.Context, command, output string, depth int, commandPath string) (string, cst.Children) {
	children := cst.NewChildren()

	if depth > c.maxDepth {
		return "", children
	}
	if _, seen := c.visited[command]; seen {
		return "", children
	}
	c.visited[command] = struct{}{}

	lines := strings.Split(text.StripANSI(output), "\n")

	// The first unindented line of a help page is its description.
	description := ""
	if len(lines) > 0 && !strings.HasPrefix(lines[0], " ") {
		description = lines[0]
	}

	section := ""
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if helptext.IsHeader(line) {
			section = helptext.SectionName(line)
			continue
		}
		if section == "" {
			continue
		}
		if !strings.HasPrefix(line, "  ") && !strings.HasPrefix(line, "\t") {
			continue
		}

		record := helptext.Classify(lastToken(command), section, line)
		if record == nil {
			continue
		}

		switch record.Kind {
		case helptext.KindFlag:
			children.Flags = append(children.Flags, *record.Flag)
		case helptext.KindUsage:
			children.Usages = append(children.Usages, *record.Usage)
		case helptext.KindOther:
			children.Other = append(children.Other, *record.Other)
		case helptext.KindCommand:
			c.crawlChild(ctx, &children, record.Command, command, commandPath, depth)
		}
	}

	return description, children
}

// crawlChild records a discovered subcommand and, within the depth cap
// and when not already visited, probes and recurses into it. A failed
// probe still leaves the child recorded as a leaf.
func (c *Crawler) crawlChild(ctx context.Context, children *cst.Children, line *helptext.Command, parentCommand, parentPath string, depth int) {
	childCommand := parentCommand + " " + line.Name
	child := &cst.Node{
		Name:         line.Name,
		Description:  line.Description,
		ParentHeader: line.ParentHeader,
		Parent:       line.Parent,
		Depth:        depth + 1,
		CommandPath:  parentPath + " " + line.Name,
		Children:     cst.NewChildren(),
	}
	children.Commands[line.Name] = child

	if _, seen := c.visited[childCommand]; seen {
		logger.Debug().
			Str("crawl_id", c.crawlID).
			Str("command", childCommand).
			Msg("already visited, recording leaf")
		return
	}
	if depth >= c.maxDepth {
		logger.Debug().
			Str("crawl_id", c.crawlID).
			Str("command", childCommand).
			Int("depth", depth+1).
			Msg("depth cap reached, recording leaf")
		return
	}

	help := c.probe(ctx, childCommand+" --help")
	if help.Status != 0 {
		logger.Warn().
			Str("crawl_id", c.crawlID).
			Str("command", childCommand).
			Int("status", help.Status).
			Msg("help probe failed, subtree truncated")
		return
	}

	description, sub := c.parseHelp(ctx, childCommand, help.Stdout, depth+1, child.CommandPath)
	child.Children = sub
	child.Outputs = &cst.Outputs{HelpPage: helpPage(help)}
	if description != "" {
		child.Description = description
	}
}

func helpPage(r probe.Result) cst.HelpPage {
	return cst.HelpPage{Stdout: r.Stdout, Stderr: r.Stderr, Status: r.Status}
}

func lastToken(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
