// Command recfile is a direct, flag-based front end over the recfile
// storage engine. It has no query language of its own — per the engine's
// scope, predicates are an opaque callback the storage core never parses —
// so its "select"/"update"/"delete" subcommands accept at most one simple
// "column=value" equality filter, good enough for ad-hoc inspection and
// scripting without reinventing a command language.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"recfile"
)

// mutatingCommands are logged with a correlation id so a run can be traced
// back through the log even though the store itself never logs.
var mutatingCommands = map[string]bool{
	"create": true, "insert": true, "update": true,
	"delete": true, "drop": true, "vacuum": true,
}

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	dbPath, cmd, args := os.Args[1], os.Args[2], os.Args[3:]

	db, err := recfile.Open(dbPath)
	if err != nil {
		fatalf("open %s: %v", dbPath, err)
	}

	var opID uuid.UUID
	if mutatingCommands[cmd] {
		opID = uuid.New()
		log.Printf("op=%s cmd=%s db=%s starting", opID, cmd, dbPath)
	}

	switch cmd {
	case "create":
		err = runCreate(db, args)
	case "insert":
		err = runInsert(db, args)
	case "select":
		err = runSelect(db, args)
	case "update":
		err = runUpdate(db, args)
	case "delete":
		err = runDelete(db, args)
	case "drop":
		err = runDrop(db, args)
	case "vacuum":
		err = runVacuum(db, args)
	case "stats":
		err = runStats(db, args)
	case "inspect":
		err = runInspect(db)
	default:
		usage()
		os.Exit(2)
	}

	if mutatingCommands[cmd] {
		if err != nil {
			log.Printf("op=%s cmd=%s failed: %v", opID, cmd, err)
		} else {
			log.Printf("op=%s cmd=%s done", opID, cmd)
		}
	}
	if err != nil {
		fatalf("%s: %v", cmd, err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: recfile <dbpath> <command> [args...]

commands:
  create <table> <col:type>...          type is int, float, or string
  insert <table> <value>...             one value per declared column, in order
  select <table> [col,col,...] [col=value]
  update <table> col=value... [col=value filter]
  delete <table> [col=value]
  drop <table>
  vacuum <table>
  stats <table>
  inspect`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "recfile: "+format+"\n", args...)
	os.Exit(1)
}

// parseColType parses a "name:type" column declaration.
func parseColType(spec string) (recfile.ColumnDesc, error) {
	name, typ, ok := strings.Cut(spec, ":")
	if !ok {
		return recfile.ColumnDesc{}, fmt.Errorf("column spec %q must be name:type", spec)
	}
	switch typ {
	case "int":
		return recfile.ColumnDesc{Name: name, Type: recfile.TypeInt}, nil
	case "float":
		return recfile.ColumnDesc{Name: name, Type: recfile.TypeFloat}, nil
	case "string":
		return recfile.ColumnDesc{Name: name, Type: recfile.TypeString}, nil
	default:
		return recfile.ColumnDesc{}, fmt.Errorf("unknown column type %q (want int, float, or string)", typ)
	}
}

func runCreate(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("usage: create <table> <col:type>...")
	}
	cols := make([]recfile.ColumnDesc, 0, len(rest)-1)
	for _, spec := range rest[1:] {
		c, err := parseColType(spec)
		if err != nil {
			return err
		}
		cols = append(cols, c)
	}
	return db.CreateTable(rest[0], cols)
}

// cellFromColumn parses raw into a Cell matching col's declared type.
func cellFromColumn(col recfile.ColumnDesc, raw string) (recfile.Cell, error) {
	switch col.Type {
	case recfile.TypeInt:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return recfile.Cell{}, fmt.Errorf("column %q: %w", col.Name, err)
		}
		return recfile.IntCell(int32(n)), nil
	case recfile.TypeFloat:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return recfile.Cell{}, fmt.Errorf("column %q: %w", col.Name, err)
		}
		return recfile.FloatCell(float32(f)), nil
	default:
		return recfile.StringCell(raw), nil
	}
}

func runInsert(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("insert", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: insert <table> <value>...")
	}
	table := rest[0]
	info, err := tableInfo(db, table)
	if err != nil {
		return err
	}
	values := rest[1:]
	if len(values) != len(info.Columns) {
		return fmt.Errorf("table %q has %d columns, got %d values", table, len(info.Columns), len(values))
	}
	cells := make([]recfile.Cell, len(values))
	for i, raw := range values {
		c, err := cellFromColumn(info.Columns[i], raw)
		if err != nil {
			return err
		}
		cells[i] = c
	}
	return db.Insert(table, cells)
}

// tableInfo looks up table's catalog entry by walking InspectCatalog, since
// the public API exposes no single-table lookup of column declarations.
func tableInfo(db *recfile.DB, table string) (recfile.TableInfo, error) {
	all, err := db.InspectCatalog()
	if err != nil {
		return recfile.TableInfo{}, err
	}
	for _, t := range all {
		if t.Name == table {
			return t, nil
		}
	}
	return recfile.TableInfo{}, fmt.Errorf("table %q not found", table)
}

// eqPredicate builds a Predicate from a single "column=value" filter string
// against info's column types, or recfile.AlwaysTrue if filter is empty.
func eqPredicate(info recfile.TableInfo, filter string) (recfile.Predicate, error) {
	if filter == "" {
		return recfile.AlwaysTrue, nil
	}
	name, raw, ok := strings.Cut(filter, "=")
	if !ok {
		return nil, fmt.Errorf("filter %q must be column=value", filter)
	}
	var col recfile.ColumnDesc
	found := false
	for _, c := range info.Columns {
		if c.Name == name {
			col, found = c, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	want, err := cellFromColumn(col, raw)
	if err != nil {
		return nil, err
	}
	return func(r recfile.Row) bool {
		v, ok := r[name]
		return ok && v.Any() == want.Any()
	}, nil
}

func runSelect(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("select", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: select <table> [col,col,...] [col=value]")
	}
	table := rest[0]
	cols := []string{"*"}
	filter := ""
	if len(rest) >= 2 {
		cols = strings.Split(rest[1], ",")
	}
	if len(rest) >= 3 {
		filter = rest[2]
	}

	info, err := tableInfo(db, table)
	if err != nil {
		return err
	}
	pred, err := eqPredicate(info, filter)
	if err != nil {
		return err
	}

	types, rows, err := db.Select(table, cols, pred)
	if err != nil {
		return err
	}
	projected := cols
	if len(projected) == 1 && projected[0] == "*" {
		projected = make([]string, len(info.Columns))
		for i, c := range info.Columns {
			projected[i] = c.Name
		}
	}
	_ = types

	w := csv.NewWriter(os.Stdout)
	w.Write(projected)
	for _, r := range rows {
		rec := make([]string, len(projected))
		for i, name := range projected {
			rec[i] = r[name].String()
		}
		w.Write(rec)
	}
	w.Flush()
	return w.Error()
}

func runUpdate(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("usage: update <table> col=value... [col=value filter]")
	}
	table := rest[0]
	info, err := tableInfo(db, table)
	if err != nil {
		return err
	}

	assignments := make(map[string]recfile.Cell)
	filter := ""
	for _, spec := range rest[1:] {
		name, raw, ok := strings.Cut(spec, "=")
		if !ok {
			return fmt.Errorf("assignment %q must be column=value", spec)
		}
		var col recfile.ColumnDesc
		found := false
		for _, c := range info.Columns {
			if c.Name == name {
				col, found = c, true
				break
			}
		}
		if !found {
			// Not a known column: treat the whole spec as the filter.
			filter = spec
			continue
		}
		v, err := cellFromColumn(col, raw)
		if err != nil {
			return err
		}
		assignments[name] = v
	}

	pred, err := eqPredicate(info, filter)
	if err != nil {
		return err
	}
	return db.Update(table, assignments, pred)
}

func runDelete(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: delete <table> [col=value]")
	}
	table := rest[0]
	filter := ""
	if len(rest) >= 2 {
		filter = rest[1]
	}
	info, err := tableInfo(db, table)
	if err != nil {
		return err
	}
	pred, err := eqPredicate(info, filter)
	if err != nil {
		return err
	}
	return db.Delete(table, pred)
}

func runDrop(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("drop", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: drop <table>")
	}
	return db.DropTable(rest[0])
}

func runVacuum(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("vacuum", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: vacuum <table>")
	}
	return db.Vacuum(rest[0])
}

func runStats(db *recfile.DB, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: stats <table>")
	}
	stats, err := db.Stats(rest[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "name\t%s\n", stats.Name)
	fmt.Fprintf(w, "pages\t%d\n", stats.PageCount)
	fmt.Fprintf(w, "rows\t%d\n", stats.RowCount)
	fmt.Fprintf(w, "record_size\t%d\n", stats.RecordSize)
	return w.Flush()
}

func runInspect(db *recfile.DB) error {
	tables, err := db.InspectCatalog()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "slot\tname\tfirst_page\tlast_page\trecord_size\tpages\trows")
	for _, t := range tables {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
			t.Slot, t.Name, t.FirstPage, t.LastPage, t.RecordSize, t.PageCount, t.RowCount)
	}
	return w.Flush()
}
