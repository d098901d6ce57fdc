package mend

import (
	"fmt"
	"io"
	"os"
	"time"

	"src.tagmend.sh/pkg/config"
	"src.tagmend.sh/pkg/errutil"
	"src.tagmend.sh/pkg/prog"
	"src.tagmend.sh/pkg/store"
	"src.tagmend.sh/pkg/sys"
)

// Name used for input read from stdin.
const stdinName = "<stdin>"

var now = time.Now

// Program is the mend subprogram. It always runs, so it should come last in a
// prog.Composite.
type Program struct {
	tags, write, check, history bool
	report, db                  string

	json   *bool
	config *string
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.tags, "tags", false, "write only the corrected tags instead of the corrected source")
	fs.BoolVar(&p.write, "w", false, "write the corrected source back to the files")
	fs.BoolVar(&p.check, "check", false, "only report edits; exit with 1 if any are needed")
	fs.StringVar(&p.report, "report", "", "write an edit report to stderr, in text, json or yaml")
	fs.StringVar(&p.db, "db", "", "path to a database recording the history of runs")
	fs.BoolVar(&p.history, "history", false, "show the history of runs recorded in -db and quit")
	p.json = fs.JSON()
	p.config = fs.Config()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	cfg, err := config.Load(*p.config)
	if err != nil {
		return err
	}
	format, err := p.reportFormat(cfg)
	if err != nil {
		return err
	}

	switch {
	case p.write && len(args) == 0:
		return prog.BadUsage("-w requires file arguments")
	case p.write && (p.tags || p.check):
		return prog.BadUsage("-w cannot be used with -tags or -check")
	case p.history && p.db == "":
		return prog.BadUsage("-history requires -db")
	case p.history && len(args) > 0:
		return prog.BadUsage("-history cannot be used with file arguments")
	case len(args) == 0 && !p.history && sys.IsTerminal(fds[0]):
		return prog.BadUsage("no input files given and stdin is a terminal")
	}

	var st *store.Store
	if p.db != "" {
		st, err = store.Open(p.db)
		if err != nil {
			return err
		}
		defer st.Close()
	}
	if p.history {
		return showHistory(fds[1], st, format)
	}

	var results []*Result
	var errs []error
	if len(args) == 0 {
		src, err := io.ReadAll(fds[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", stdinName, err)
		}
		results = append(results, Mend(stdinName, string(src), cfg.IsVoid))
	} else {
		for _, name := range args {
			src, err := os.ReadFile(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			results = append(results, Mend(name, string(src), cfg.IsVoid))
		}
	}

	var entries []Entry
	for _, r := range results {
		errs = append(errs, p.output(fds[1], r))
		if st != nil {
			errs = append(errs, record(st, r))
		}
		entries = append(entries, r.Entries()...)
	}
	if format != "" {
		errs = append(errs, WriteReport(fds[2], format, entries))
	}

	if err := errutil.Multi(errs...); err != nil {
		return err
	}
	if p.check && len(entries) > 0 {
		return prog.Exit(1)
	}
	return nil
}

// Returns the format of the edit report, or "" if no report should be written.
func (p *Program) reportFormat(cfg *config.Config) (string, error) {
	format := p.report
	if *p.json {
		format = "json"
	}
	if format == "" && (p.check || p.history) {
		format = cfg.Report
	}
	if format != "" {
		if err := config.CheckReport(format); err != nil {
			return "", prog.BadUsage(err.Error())
		}
	}
	return format, nil
}

func (p *Program) output(w io.Writer, r *Result) error {
	switch {
	case p.check:
		return nil
	case p.tags:
		_, err := fmt.Fprintln(w, r.Tags)
		return err
	case p.write:
		if len(r.Edits) == 0 {
			return nil
		}
		info, err := os.Stat(r.Name)
		if err != nil {
			return err
		}
		return os.WriteFile(r.Name, []byte(r.Output), info.Mode().Perm())
	default:
		_, err := io.WriteString(w, r.Output)
		return err
	}
}

func record(st *store.Store, r *Result) error {
	inserted, discarded := r.Counts()
	_, err := st.AddRecord(store.Record{
		Name: r.Name, Time: now(), Tags: len(r.Tokens),
		Inserted: inserted, Discarded: discarded})
	return err
}

func showHistory(w io.Writer, st *store.Store, format string) error {
	records, err := st.Records()
	if err != nil {
		return err
	}
	if records == nil {
		records = []store.Record{}
	}
	return writeAs(w, format, records, func() error {
		for i, r := range records {
			_, err := fmt.Fprintf(w, "%d %s %s tags=%d inserted=%d discarded=%d\n",
				i+1, r.Time.Format(time.RFC3339), r.Name, r.Tags, r.Inserted, r.Discarded)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
