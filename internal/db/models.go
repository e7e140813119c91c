package db

// Frequencia is the closed run-cadence domain for bots. The values are the
// lowercase wire strings and match the ENUM column in the bots table.
type Frequencia string

const (
	FrequenciaDiaria     Frequencia = "diaria"
	FrequenciaSemanal    Frequencia = "semanal"
	FrequenciaMensal     Frequencia = "mensal"
	FrequenciaTrimestral Frequencia = "trimestral"
	FrequenciaIntervalo  Frequencia = "intervalo"
	FrequenciaDemanda    Frequencia = "demanda"
)

// Valid reports whether f is one of the six admitted values.
func (f Frequencia) Valid() bool {
	switch f {
	case FrequenciaDiaria, FrequenciaSemanal, FrequenciaMensal,
		FrequenciaTrimestral, FrequenciaIntervalo, FrequenciaDemanda:
		return true
	}
	return false
}

// Domain models (must match handlers)

type VirtualMachine struct {
	ID       int64   `db:"id" json:"id"`
	Nome     string  `db:"nome_vm" json:"nome_vm"`
	Endereco *string `db:"endereco_ipv4_vm" json:"endereco_ipv4_vm"`
	Status   bool    `db:"flg_status_vm" json:"flg_status_vm"`
}

type Bot struct {
	ID                 int64      `db:"id" json:"id"`
	NomeAutomacao      string     `db:"nome_automacao" json:"nome_automacao"`
	Status             bool       `db:"flg_status_bot" json:"flg_status_bot"`
	Frequencia         Frequencia `db:"frequencia_execucao" json:"frequencia_execucao"`
	DiaExecucao        *string    `db:"dia_execucao" json:"dia_execucao"`
	HoraExecucao       *string    `db:"hora_execucao" json:"hora_execucao"`
	IntervaloExecucao  *int       `db:"intervalo_execucao" json:"intervalo_execucao"`
	ToleranciaExecucao *int       `db:"tolerancia_execucao" json:"tolerancia_execucao"`
	VirtualMachineID   int64      `db:"virtual_machine_id" json:"virtual_machine_id"`
}
