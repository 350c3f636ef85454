package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"tiaforge/internal/domain"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Journal using SQLite
type Repository struct {
	db *sql.DB
}

// New opens (and migrates) the journal at dbPath. ":memory:" gives a
// private in-memory journal.
func New(dbPath string) (*Repository, error) {
	dsn := dbPath + "?_pragma=foreign_keys(1)"
	if dbPath != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: an in-memory database exists per connection, and the
	// CLI never writes concurrently.
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		project TEXT NOT NULL,
		input TEXT NOT NULL,
		backend TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		subnet TEXT,
		io_system TEXT,
		error TEXT
	);

	CREATE TABLE IF NOT EXISTS devices (
		run_id TEXT NOT NULL,
		row_index INTEGER NOT NULL,
		device_type TEXT NOT NULL,
		device_name TEXT NOT NULL,
		catalog_id TEXT NOT NULL,
		interfaces INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (run_id, row_index),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS modules (
		run_id TEXT NOT NULL,
		row_index INTEGER NOT NULL,
		seq INTEGER NOT NULL,
		catalog_id TEXT NOT NULL,
		display_name TEXT,
		status TEXT NOT NULL,
		container TEXT,
		interface TEXT,
		position INTEGER,
		probes INTEGER NOT NULL DEFAULT 0,
		probe_errors INTEGER NOT NULL DEFAULT 0,
		error TEXT,
		PRIMARY KEY (run_id, row_index, seq),
		FOREIGN KEY (run_id, row_index) REFERENCES devices(run_id, row_index) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS interfaces (
		run_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		device TEXT NOT NULL,
		address TEXT,
		subnet TEXT,
		status TEXT NOT NULL,
		error TEXT,
		PRIMARY KEY (run_id, idx),
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	CREATE INDEX IF NOT EXISTS idx_modules_status ON modules(status);
	`

	_, err := r.db.Exec(schema)
	return err
}

// Close closes the database
func (r *Repository) Close() error {
	return r.db.Close()
}

// SaveReport journals a run. Saving a run id again replaces the earlier entry.
func (r *Repository) SaveReport(ctx context.Context, report *domain.Report) error {
	if report.RunID == "" {
		return fmt.Errorf("report has no run id")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, report.RunID); err != nil {
		return fmt.Errorf("failed to clear run: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, project, input, backend, started_at, finished_at, subnet, io_system, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.RunID, report.Project, report.Input, report.Backend,
		formatTime(report.StartedAt), formatTime(report.FinishedAt),
		stringToNull(report.Subnet), stringToNull(report.IoSystem), stringToNull(report.Error))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for _, d := range report.Devices {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO devices (run_id, row_index, device_type, device_name, catalog_id, interfaces)
			VALUES (?, ?, ?, ?, ?, ?)
		`, report.RunID, d.Row, d.DeviceType, d.DeviceName, d.CatalogID, d.Interfaces)
		if err != nil {
			return fmt.Errorf("failed to insert device %s: %w", d.DeviceName, err)
		}

		for seq, m := range d.Modules {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO modules (run_id, row_index, seq, catalog_id, display_name, status,
					container, interface, position, probes, probe_errors, error)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, report.RunID, d.Row, seq, m.CatalogID, stringToNull(m.DisplayName), string(m.Status),
				stringToNull(m.Container), stringToNull(m.Interface), intToNull(m.Position),
				m.Probes, m.ProbeErrors, stringToNull(m.Error))
			if err != nil {
				return fmt.Errorf("failed to insert module %s: %w", m.CatalogID, err)
			}
		}
	}

	for _, i := range report.Interfaces {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO interfaces (run_id, idx, device, address, subnet, status, error)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, report.RunID, i.Index, i.Device, stringToNull(i.Address), stringToNull(i.Subnet),
			string(i.Status), stringToNull(i.Error))
		if err != nil {
			return fmt.Errorf("failed to insert interface %d: %w", i.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetReport loads a run by its full id. It returns nil, nil when no run matches.
func (r *Repository) GetReport(ctx context.Context, runID string) (*domain.Report, error) {
	var (
		report                     domain.Report
		started, finished          sql.NullString
		subnet, ioSystem, errorMsg sql.NullString
	)

	err := r.db.QueryRowContext(ctx, `
		SELECT id, project, input, backend, started_at, finished_at, subnet, io_system, error
		FROM runs WHERE id = ?
	`, runID).Scan(&report.RunID, &report.Project, &report.Input, &report.Backend,
		&started, &finished, &subnet, &ioSystem, &errorMsg)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	if report.StartedAt, err = parseTime(started); err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if report.FinishedAt, err = parseTime(finished); err != nil {
		return nil, fmt.Errorf("failed to parse finished_at: %w", err)
	}
	report.Subnet = nullToString(subnet)
	report.IoSystem = nullToString(ioSystem)
	report.Error = nullToString(errorMsg)

	if report.Devices, err = r.loadDevices(ctx, runID); err != nil {
		return nil, err
	}
	if report.Interfaces, err = r.loadInterfaces(ctx, runID); err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *Repository) loadDevices(ctx context.Context, runID string) ([]domain.DeviceReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT row_index, device_type, device_name, catalog_id, interfaces
		FROM devices WHERE run_id = ? ORDER BY row_index
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}

	devices := []domain.DeviceReport{}
	index := make(map[int]int)
	for rows.Next() {
		var d domain.DeviceReport
		if err := rows.Scan(&d.Row, &d.DeviceType, &d.DeviceName, &d.CatalogID, &d.Interfaces); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		index[d.Row] = len(devices)
		devices = append(devices, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating devices: %w", err)
	}
	rows.Close()

	modRows, err := r.db.QueryContext(ctx, `
		SELECT row_index, catalog_id, display_name, status, container, interface,
			position, probes, probe_errors, error
		FROM modules WHERE run_id = ? ORDER BY row_index, seq
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query modules: %w", err)
	}
	defer modRows.Close()

	for modRows.Next() {
		var (
			row                                  int
			m                                    domain.ModuleReport
			status                               string
			name, container, iface, errorMessage sql.NullString
			position                             sql.NullInt64
		)
		if err := modRows.Scan(&row, &m.CatalogID, &name, &status, &container, &iface,
			&position, &m.Probes, &m.ProbeErrors, &errorMessage); err != nil {
			return nil, fmt.Errorf("failed to scan module: %w", err)
		}
		m.DisplayName = nullToString(name)
		m.Status = domain.ModuleStatus(status)
		m.Container = nullToString(container)
		m.Interface = nullToString(iface)
		m.Position = nullToInt(position)
		m.Error = nullToString(errorMessage)

		if i, ok := index[row]; ok {
			devices[i].Modules = append(devices[i].Modules, m)
		}
	}

	if err := modRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating modules: %w", err)
	}

	return devices, nil
}

func (r *Repository) loadInterfaces(ctx context.Context, runID string) ([]domain.InterfaceReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT idx, device, address, subnet, status, error
		FROM interfaces WHERE run_id = ? ORDER BY idx
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query interfaces: %w", err)
	}
	defer rows.Close()

	interfaces := []domain.InterfaceReport{}
	for rows.Next() {
		var (
			i                       domain.InterfaceReport
			status                  string
			address, subnet, errMsg sql.NullString
		)
		if err := rows.Scan(&i.Index, &i.Device, &address, &subnet, &status, &errMsg); err != nil {
			return nil, fmt.Errorf("failed to scan interface: %w", err)
		}
		i.Address = nullToString(address)
		i.Subnet = nullToString(subnet)
		i.Status = domain.InterfaceStatus(status)
		i.Error = nullToString(errMsg)
		interfaces = append(interfaces, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating interfaces: %w", err)
	}

	return interfaces, nil
}

// ListRuns returns the most recent runs first. A limit of zero or less
// returns every run.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	query := `
		SELECT r.id, r.project, r.input, r.backend, r.started_at, r.finished_at, r.error,
			(SELECT COUNT(*) FROM devices d WHERE d.run_id = r.id),
			(SELECT COUNT(*) FROM modules m WHERE m.run_id = r.id AND m.status = ?),
			(SELECT COUNT(*) FROM interfaces i WHERE i.run_id = r.id AND i.status = ?)
		FROM runs r
		ORDER BY r.started_at DESC, r.id
	`
	args := []any{string(domain.ModuleUnplaced), string(domain.InterfaceFailed)}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.RunSummary{}
	for rows.Next() {
		var (
			s                         domain.RunSummary
			started, finished, errMsg sql.NullString
		)
		if err := rows.Scan(&s.RunID, &s.Project, &s.Input, &s.Backend, &started, &finished, &errMsg,
			&s.Devices, &s.Unplaced, &s.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if s.StartedAt, err = parseTime(started); err != nil {
			return nil, fmt.Errorf("failed to parse started_at: %w", err)
		}
		if s.FinishedAt, err = parseTime(finished); err != nil {
			return nil, fmt.Errorf("failed to parse finished_at: %w", err)
		}
		s.Error = nullToString(errMsg)
		runs = append(runs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return runs, nil
}

// ResolveRunID expands a unique run id prefix into the full id
func (r *Repository) ResolveRunID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", domain.ErrRunNotFound
	}

	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(prefix)
	rows, err := r.db.QueryContext(ctx, `
		SELECT id FROM runs WHERE id LIKE ? ESCAPE '\' ORDER BY id LIMIT 2
	`, escaped+"%")
	if err != nil {
		return "", fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("failed to scan run id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("error iterating runs: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", domain.ErrRunNotFound, prefix)
	case 1:
		return ids[0], nil
	}
	return "", fmt.Errorf("%w: %s", domain.ErrAmbiguousRun, prefix)
}

// DeleteRun removes a run and its child rows
func (r *Repository) DeleteRun(ctx context.Context, runID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", domain.ErrRunNotFound, runID)
	}
	return nil
}
