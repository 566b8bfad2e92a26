package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"github.com/arkbc/abcdis/abcfile"
	"github.com/arkbc/abcdis/api"
	"github.com/arkbc/abcdis/config"
	"github.com/arkbc/abcdis/explorer"
	"github.com/arkbc/abcdis/loader"
	"github.com/arkbc/abcdis/tools"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		apiServer   = flag.Bool("api-server", false, "Start HTTP API server mode")
		apiPort     = flag.Int("port", 0, "API server port (used with -api-server; 0 uses the config default)")
		interactive = flag.Bool("interactive", false, "Start the interactive TUI explorer")
		listClasses = flag.Bool("classes", false, "Print sorted class names")
		listMethods = flag.Bool("methods", false, "Print sorted qualified method names")
		listStrings = flag.Bool("strings", false, "Print strings reachable through region MSL tables")
		showInfo    = flag.Bool("info", false, "Print header and region summary")
		methodName  = flag.String("method", "", "Disassemble a single qualified method (e.g. Lfoo/Bar;->baz)")
		showXRef    = flag.Bool("xref", false, "Print the method cross-reference report")
		validate    = flag.Bool("validate", false, "Run structural invariant checks and print a report")
		configPath  = flag.String("config", "", "Path to the config file (default: abcdis/config.toml in the platform config dir)")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("abcdis %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *apiServer {
		port := *apiPort
		if port == 0 {
			port = cfg.API.Port
		}
		runAPIServer(port)
		return
	}

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(0)
	}

	path := flag.Arg(0)
	buf, err := loader.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer buf.Close()

	f, err := abcfile.New(buf.Bytes, abcfile.DefaultWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %s: %v\n", path, err)
		os.Exit(1)
	}

	if *interactive {
		exp := explorer.New(f)
		if err := exp.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Explorer error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ranQuery := false

	if *showInfo {
		printInfo(f)
		ranQuery = true
	}
	if *listClasses {
		names := f.ClassNames()
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(n)
		}
		ranQuery = true
	}
	if *listMethods {
		names := f.MethodNames()
		sort.Strings(names)
		for _, n := range names {
			fmt.Println(n)
		}
		ranQuery = true
	}
	if *listStrings {
		for _, s := range f.Strings() {
			fmt.Println(s)
		}
		ranQuery = true
	}
	if *methodName != "" {
		insns, err := f.DisassembleMethod(*methodName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error disassembling %s: %v\n", *methodName, err)
			if errors.Is(err, abcfile.ErrInvalidMethodReference) {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fmt.Print(tools.FormatListing(*methodName, insns, tools.DefaultListingOptions()))
		ranQuery = true
	}
	if *showXRef {
		fmt.Print(tools.XRefReport(tools.BuildXRef(f)))
		ranQuery = true
	}
	if *validate {
		_, report, _ := tools.Validate(buf.Bytes)
		fmt.Print(report.String())
		if report.HasErrors() {
			os.Exit(1)
		}
		ranQuery = true
	}

	if !ranQuery {
		printInfo(f)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = config.GetConfigPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return config.LoadFrom(path)
}

func printInfo(f *abcfile.File) {
	h := f.Header()
	fmt.Printf("file_size:        %d\n", h.FileSize)
	fmt.Printf("foreign_off:      0x%x\n", h.ForeignOff)
	fmt.Printf("foreign_size:     0x%x\n", h.ForeignSize)
	fmt.Printf("num_classes:      %d\n", h.NumClasses)
	fmt.Printf("region_size:      %d\n", h.RegionSize)
	fmt.Printf("classes:          %d\n", len(f.ClassNames()))
	fmt.Printf("methods:          %d\n", len(f.MethodNames()))
	fmt.Printf("strings:          %d\n", len(f.Strings()))
	fmt.Printf("regions:          %d\n", len(f.Regions()))
}

func runAPIServer(port int) {
	server := api.NewServerWithVersion(port, Version, Commit, Date)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down API server...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("API server stopped")
			os.Exit(0)
		})
	}

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}

func printHelp() {
	fmt.Printf(`abcdis %s

Usage: abcdis [options] <abc-file>
       abcdis -api-server [-port N]

Options:
  -help            Show this help message
  -version         Show version information
  -interactive     Start the interactive TUI explorer
  -info            Print header and region summary (default when no query flag given)
  -classes         Print sorted class names
  -methods         Print sorted qualified method names
  -strings         Print strings reachable through region MSL tables
  -method NAME     Disassemble a single qualified method (e.g. Lfoo/Bar;->baz)
  -xref            Print the method cross-reference report
  -validate        Run structural invariant checks and print a report
  -api-server      Start HTTP API server mode (no abc file required)
  -port N          API server port (default: from config, usually 8842)
  -config PATH     Path to the config file (default: abcdis/config.toml in the platform config dir)
`, Version)
}
