package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/dhamidi/jvmdesc/classfile"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

func newScanCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "scan <path>...",
		Short: "Check every descriptor in class files, directories and jars",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &scanner{out: cmd.OutOrStdout(), log: commonlog.GetLogger("jdesc.scan")}
			if err := s.run(cmd.Context(), args, jobs); err != nil {
				return err
			}
			s.report()
			if s.failures > 0 || len(s.unreadable) > 0 {
				return fmt.Errorf("%d malformed descriptors, %d unreadable files", s.failures, len(s.unreadable))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of class files checked in parallel")

	return cmd
}

// classSource is one class file waiting to be read, on disk or in a jar.
type classSource struct {
	name string
	open func() (io.ReadCloser, error)
}

type scanner struct {
	out io.Writer
	log commonlog.Logger

	mu          sync.Mutex
	files       int
	descriptors int
	failures    int
	unreadable  []string
	closers     []io.Closer
}

func (s *scanner) run(ctx context.Context, paths []string, jobs int) error {
	var sources []classSource
	for _, path := range paths {
		found, err := s.collect(path)
		if err != nil {
			return err
		}
		sources = append(sources, found...)
	}
	defer func() {
		for _, c := range s.closers {
			c.Close()
		}
	}()
	s.log.Infof("scanning %d class files", len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.check(src)
			return nil
		})
	}
	return g.Wait()
}

func (s *scanner) collect(path string) ([]classSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return s.collectFile(path)
	}

	var sources []classSource
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(p) {
		case ".class", ".jar", ".zip":
			found, err := s.collectFile(p)
			if err != nil {
				return err
			}
			sources = append(sources, found...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", path, err)
	}
	return sources, nil
}

func (s *scanner) collectFile(path string) ([]classSource, error) {
	switch filepath.Ext(path) {
	case ".class":
		return []classSource{{
			name: path,
			open: func() (io.ReadCloser, error) { return os.Open(path) },
		}}, nil
	case ".jar", ".zip":
		r, err := zip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		s.closers = append(s.closers, r)

		var sources []classSource
		for _, f := range r.File {
			if f.FileInfo().IsDir() || filepath.Ext(f.Name) != ".class" {
				continue
			}
			sources = append(sources, classSource{name: path + "!" + f.Name, open: f.Open})
		}
		return sources, nil
	}
	return nil, fmt.Errorf("unsupported file type: %s", path)
}

func (s *scanner) check(src classSource) {
	cf, err := readClass(src)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.unreadable = append(s.unreadable, src.name)
		fmt.Fprintf(s.out, "%s: %v\n", src.name, err)
		return
	}

	refs := cf.Descriptors()
	var problems []string
	for _, ref := range refs {
		if err := ref.Check(); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %s: %v", src.name, ref, err))
		}
	}
	s.log.Debugf("%s: %d descriptors", src.name, len(refs))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files++
	s.descriptors += len(refs)
	s.failures += len(problems)
	for _, p := range problems {
		fmt.Fprintln(s.out, p)
	}
}

func readClass(src classSource) (*classfile.ClassFile, error) {
	rc, err := src.open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return classfile.Parse(bytes.NewReader(data))
}

func (s *scanner) report() {
	sort.Strings(s.unreadable)

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Class files", "Descriptors", "Malformed", "Unreadable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})
	table.Append([]string{
		fmt.Sprint(s.files),
		fmt.Sprint(s.descriptors),
		fmt.Sprint(s.failures),
		fmt.Sprint(len(s.unreadable)),
	})
	fmt.Fprintln(s.out)
	table.Render()
}
