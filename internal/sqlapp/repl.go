package sqlapp

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

// Repl reads statements from in, one per line, executes each against db, and
// renders results to out. It exits cleanly on EOF. The prompt string is only
// written when in is an interactive terminal, so piped input behaves like a
// batch script.
func Repl(db *sql.DB, in *os.File, out io.Writer) error {
	interactive := isatty.IsTerminal(in.Fd())
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	// Outside a real terminal (piped batch input), or when term.GetSize
	// fails, colWidth stays 0 and tablewriter keeps its default column width.
	colWidth := 0
	if interactive {
		if w, _, err := term.GetSize(int(in.Fd())); err == nil {
			colWidth = w
		}
	}

	for {
		if interactive {
			fmt.Fprint(out, "pokeplat> ")
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("sqlapp: read query: %w", err)
			}
			return nil
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		if err := runQuery(db, query, out, colWidth); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func runQuery(db *sql.DB, query string, out io.Writer, colWidth int) error {
	start := time.Now()

	rows, err := db.Query(query)
	if err != nil {
		// Not every statement produces a result set (INSERT/UPDATE/DELETE,
		// or DDL); fall back to Exec so the REPL can run both kinds.
		result, execErr := db.Exec(query)
		if execErr != nil {
			return fmt.Errorf("execute: %w", err)
		}

		changed, _ := result.RowsAffected()
		fmt.Fprintf(out, "OK (%d rows changed, %dms)\n", changed, time.Since(start).Milliseconds())
		return nil
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("read columns: %w", err)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader(cols)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	if colWidth > 0 {
		table.SetColWidth(colWidth / max(len(cols), 1))
	}

	rowCount := 0
	values := make([]any, len(cols))
	scanDest := make([]any, len(cols))
	for i := range values {
		scanDest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanDest...); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}

		rendered := make([]string, len(cols))
		for i, v := range values {
			rendered[i] = renderCell(v)
		}
		table.Append(rendered)
		rowCount++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate rows: %w", err)
	}

	table.Render()
	fmt.Fprintf(out, "%d rows (%dms)\n", rowCount, time.Since(start).Milliseconds())
	return nil
}

// renderCell formats one result column per the rendering rules: null,
// integer, real, text (UTF-8, lossily), and a byte-count placeholder for
// blobs.
func renderCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "<null>"
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%v", val)
	case string:
		return val
	case []byte:
		return fmt.Sprintf("<%d bytes blob>", len(val))
	default:
		return fmt.Sprintf("%v", val)
	}
}
