package db

// Query functions for the bots table.

// botColumns is the fixed set of client-writable columns, in statement order.
var botColumns = []string{
	"nome_automacao", "flg_status_bot", "frequencia_execucao",
	"dia_execucao", "hora_execucao", "intervalo_execucao",
	"tolerancia_execucao", "virtual_machine_id",
}

// NewBot carries the fields for an insert. Frequencia must already be
// validated against the closed domain; the ENUM column is the backstop.
type NewBot struct {
	NomeAutomacao      string
	Status             bool
	Frequencia         Frequencia
	DiaExecucao        *string
	HoraExecucao       *string
	IntervaloExecucao  *int
	ToleranciaExecucao *int
	VirtualMachineID   int64
}

func ListBots(d *DB) ([]Bot, error) {
	var bots []Bot
	if err := d.Select(&bots, "SELECT * FROM bots ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return bots, nil
}

// InsertBot creates one row and returns the generated id. A
// virtual_machine_id that references no machine fails at the store's
// foreign-key layer; callers classify it with IsForeignKeyViolation.
func InsertBot(d *DB, in NewBot) (int64, error) {
	res, err := d.Exec(
		`INSERT INTO bots
		 (nome_automacao, flg_status_bot, frequencia_execucao,
		  dia_execucao, hora_execucao, intervalo_execucao, tolerancia_execucao,
		  virtual_machine_id)
		 VALUES (?,?,?,?,?,?,?,?)`,
		in.NomeAutomacao, in.Status, in.Frequencia,
		in.DiaExecucao, in.HoraExecucao, in.IntervaloExecucao, in.ToleranciaExecucao,
		in.VirtualMachineID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateBot applies a partial patch: only columns present in changes are
// written. Returns the matched row count (0 means the id does not exist).
func UpdateBot(d *DB, id int64, changes map[string]any) (int64, error) {
	return updateRow(d, "bots", botColumns, id, changes)
}

func DeleteBot(d *DB, id int64) (int64, error) {
	res, err := d.Exec("DELETE FROM bots WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
