package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/icu4x-go/abi"
	"github.com/wippyai/icu4x-go/capi"
	"github.com/wippyai/icu4x-go/engine"
	"github.com/wippyai/icu4x-go/icu"
)

func main() {
	var (
		localeName  = flag.String("locale", "en", "Locale to resolve a calendar for")
		kindName    = flag.String("kind", "", "Calendar kind (e.g. Buddhist) or BCP 47 id (e.g. buddhist)")
		dataFile    = flag.String("data", "", "Path to a YAML data provider file (default: compiled data)")
		wire        = flag.Bool("wire", false, "Route every call through linear memory")
		guestFile   = flag.String("guest", "", "Route every call through the memory of a wasm guest")
		pages       = flag.Uint("pages", 0, "Memory limit in pages for -guest (0 = wazero default)")
		list        = flag.Bool("list", false, "List boundary functions and exit")
		verbose     = flag.Bool("v", false, "Log boundary events to stderr")
		interactive = flag.Bool("i", false, "Interactive boundary console with TUI")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			capi.SetLogger(l)
			icu.SetLogger(l)
			engine.SetLogger(l)
			defer l.Sync()
		}
	}

	if *list {
		listSurface(capi.DefaultSurface())
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	opts := options{
		locale:   *localeName,
		kind:     *kindName,
		data:     *dataFile,
		wire:     *wire,
		guest:    *guestFile,
		maxPages: uint32(*pages),
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	locale   string
	kind     string
	data     string
	guest    string
	maxPages uint32
	wire     bool
}

func run(opts options) error {
	ctx := context.Background()

	lib := capi.New()
	defer lib.Close()

	b, transport, cleanup, err := boundary(ctx, lib, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	env := icu.New(b)
	provider, err := openProvider(env, opts.data)
	if err != nil {
		return err
	}
	defer provider.Close()

	fmt.Printf("Transport: %s\n", transport)

	var cal *icu.Calendar
	if opts.kind != "" {
		kind, ok := icu.ParseCalendarKind(opts.kind)
		if !ok {
			kind, ok = env.KindForBCP47(opts.kind)
		}
		if !ok {
			return fmt.Errorf("unknown calendar kind %q", opts.kind)
		}
		cal, err = icu.NewCalendarForKind(provider, kind)
		if err != nil {
			return fmt.Errorf("create calendar %s: %w", kind, err)
		}
	} else {
		loc, err := env.ParseLocale(opts.locale)
		if err != nil {
			return fmt.Errorf("parse locale %q: %w", opts.locale, err)
		}
		defer loc.Close()

		fmt.Printf("Locale: %s (calendar explicit: %v)\n", opts.locale, loc.IsCalendarExplicit())
		cal, err = icu.NewCalendarForLocale(provider, loc)
		if err != nil {
			return fmt.Errorf("create calendar for %s: %w", opts.locale, err)
		}
	}
	defer cal.Close()

	fmt.Printf("Calendar: %s\n", cal.Kind())

	tc := env.DefaultTitlecaseOptions()
	fmt.Printf("Titlecase defaults: head=%s tail=%s\n", tc.HeadAdjustment, tc.TrailingCase)
	return nil
}

// boundary picks the transport. The returned cleanup releases the
// transport after every wrapper is closed.
func boundary(ctx context.Context, lib *capi.Library, opts options) (capi.Boundary, string, func(), error) {
	switch {
	case opts.guest != "":
		wasm, err := os.ReadFile(opts.guest)
		if err != nil {
			return nil, "", nil, fmt.Errorf("read guest: %w", err)
		}
		e, err := engine.New(ctx, lib, &engine.Config{MemoryLimitPages: opts.maxPages})
		if err != nil {
			return nil, "", nil, fmt.Errorf("create engine: %w", err)
		}
		guest, err := e.Load(ctx, wasm)
		if err != nil {
			e.Close(ctx)
			return nil, "", nil, fmt.Errorf("load guest: %w", err)
		}
		client, err := guest.Client(ctx)
		if err != nil {
			e.Close(ctx)
			return nil, "", nil, err
		}
		return client, "guest memory (" + opts.guest + ")", func() { e.Close(ctx) }, nil

	case opts.wire:
		exports, err := capi.NewExports(lib)
		if err != nil {
			return nil, "", nil, err
		}
		mem := abi.NewLinearMemory(1, 256)
		cleanup := func() {
			if s := mem.Stats(); s.LiveCount != 0 {
				fmt.Fprintf(os.Stderr, "warning: %d allocations (%d bytes) still live\n", s.LiveCount, s.LiveBytes)
			}
		}
		return capi.NewMemoryClient(exports, mem, mem), "linear memory", cleanup, nil

	default:
		return lib, "in-process", func() {}, nil
	}
}

func openProvider(env *icu.Env, path string) (*icu.DataProvider, error) {
	if path == "" {
		return env.CompiledProvider(), nil
	}
	p, err := env.ProviderFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

func listSurface(s *capi.Surface) {
	fmt.Printf("Boundary functions (%d):\n", len(s.Names()))
	for _, name := range s.Names() {
		sym, _ := s.Lookup(name)
		params, results := sym.Flat()
		fmt.Printf("  %-45s %-9s %s  [core: %d -> %d]\n",
			name, sym.Kind, formatSignature(sym), params, results)
	}
}

func formatSignature(sym capi.Symbol) string {
	var params []string
	for _, p := range sym.Params {
		params = append(params, p.Name+": "+witTypeStr(p.Type))
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if sym.Result != nil {
		sig += " -> " + witTypeStr(sym.Result)
	}
	return sig
}
