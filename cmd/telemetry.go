package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/strata/internal/config"
	"github.com/papapumpkin/strata/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry [file]",
	Short: "View JSONL telemetry events",
	Long: `Reads and formats a JSONL telemetry file. Without an argument, reads the
configured telemetry_path.

With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	telemetryCmd.Flags().String("kind", "", "only show events of this kind")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, args []string) error {
	follow, _ := cmd.Flags().GetBool("follow")
	kind, _ := cmd.Flags().GetString("kind")

	path, err := resolveTelemetryPath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	// Print all existing events.
	reader := newEventReader(f, kind)
	if err := reader.printLines(cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}

	if !follow {
		reader.flush(cmd.OutOrStdout())
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tailFollow(ctx, cmd.OutOrStdout(), reader, path)
}

// eventReader reads JSONL events from a file that may still be growing.
// A line without its newline is held back until the rest arrives.
type eventReader struct {
	r       *bufio.Reader
	kind    string
	partial strings.Builder
}

func newEventReader(r io.Reader, kind string) *eventReader {
	return &eventReader{r: bufio.NewReader(r), kind: kind}
}

// printLines prints every complete line available so far.
func (er *eventReader) printLines(w io.Writer) error {
	for {
		chunk, err := er.r.ReadString('\n')
		if err == io.EOF {
			er.partial.WriteString(chunk)
			return nil
		}
		if err != nil {
			return err
		}
		line := er.partial.String() + chunk
		er.partial.Reset()
		if line = strings.TrimSpace(line); line != "" {
			printEvent(w, line, er.kind)
		}
	}
}

// flush prints a trailing line that never got its newline.
func (er *eventReader) flush(w io.Writer) {
	if line := strings.TrimSpace(er.partial.String()); line != "" {
		printEvent(w, line, er.kind)
	}
	er.partial.Reset()
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(ctx context.Context, w io.Writer, r *eventReader, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := r.printLines(w); err != nil {
				return fmt.Errorf("telemetry: read %s: %w", path, err)
			}
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
// Events of other kinds are skipped when kind is set.
func printEvent(w io.Writer, line, kind string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	if kind != "" && evt.Kind != kind {
		return
	}

	parts := []string{fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), evt.Kind}
	if evt.SnapshotID != "" {
		parts = append(parts, "snapshot="+shortID(evt.SnapshotID))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}

// resolveTelemetryPath returns the file named in args or the configured
// telemetry path.
func resolveTelemetryPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TelemetryPath == "" {
		return "", fmt.Errorf("telemetry: no file given and telemetry_path is not set")
	}
	return cfg.TelemetryPath, nil
}
