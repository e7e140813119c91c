package db

// Query functions for the virtual_machines table. One parameterized
// statement per logical operation.

// vmColumns is the fixed set of client-writable columns, in statement order.
var vmColumns = []string{"nome_vm", "endereco_ipv4_vm", "flg_status_vm"}

// NewVM carries the fields for an insert. The id is store-assigned.
type NewVM struct {
	Nome     string
	Endereco *string
	Status   bool
}

func ListVMs(d *DB) ([]VirtualMachine, error) {
	var vms []VirtualMachine
	if err := d.Select(&vms, "SELECT * FROM virtual_machines ORDER BY id ASC"); err != nil {
		return nil, err
	}
	return vms, nil
}

// InsertVM creates one row and returns the generated id.
func InsertVM(d *DB, in NewVM) (int64, error) {
	res, err := d.Exec(
		"INSERT INTO virtual_machines (nome_vm, endereco_ipv4_vm, flg_status_vm) VALUES (?,?,?)",
		in.Nome, in.Endereco, in.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateVM applies a partial patch: only columns present in changes are
// written. Returns the matched row count (0 means the id does not exist).
func UpdateVM(d *DB, id int64, changes map[string]any) (int64, error) {
	return updateRow(d, "virtual_machines", vmColumns, id, changes)
}

// DeleteVM removes one row. A machine still referenced by bots fails with a
// foreign-key restriction from the store; callers classify it with
// IsDeleteRestricted.
func DeleteVM(d *DB, id int64) (int64, error) {
	res, err := d.Exec("DELETE FROM virtual_machines WHERE id=?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
