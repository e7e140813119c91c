package vms

import (
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpa-orchestrator/api-go/internal/db"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	h := New(&db.DB{DB: sqlx.NewDb(conn, "mysql")})
	r := gin.New()
	r.GET("/api/vms", h.List)
	r.POST("/api/vms", h.Create)
	r.PATCH("/api/vms/:id", h.Update)
	r.DELETE("/api/vms/:id", h.Delete)
	return r, mock
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestList(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM virtual_machines ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome_vm", "endereco_ipv4_vm", "flg_status_vm"}).
			AddRow(1, "vm1", "10.0.0.1", true).
			AddRow(2, "vm2", nil, false))

	w := do(r, http.MethodGet, "/api/vms", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"sucess": true,
		"data": [
			{"id":1,"nome_vm":"vm1","endereco_ipv4_vm":"10.0.0.1","flg_status_vm":true},
			{"id":2,"nome_vm":"vm2","endereco_ipv4_vm":null,"flg_status_vm":false}
		]
	}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmpty(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM virtual_machines ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "nome_vm", "endereco_ipv4_vm", "flg_status_vm"}))

	w := do(r, http.MethodGet, "/api/vms", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sucess": true, "data": []}`, w.Body.String())
}

func TestListStoreFailure(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM virtual_machines ORDER BY id ASC")).
		WillReturnError(&mysql.MySQLError{Number: 2002, Message: "connection refused"})

	w := do(r, http.MethodGet, "/api/vms", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"sucess":false`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestCreate(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO virtual_machines (nome_vm, endereco_ipv4_vm, flg_status_vm) VALUES (?,?,?)")).
		WithArgs("vm1", "10.0.0.1", true).
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := do(r, http.MethodPost, "/api/vms",
		`{"nome_vm":"vm1","endereco_ipv4_vm":"10.0.0.1","flg_status_vm":true}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"sucess":true,"data":{"id":1}}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Required-field validation happens before any store call.
func TestCreateMissingRequired(t *testing.T) {
	for name, body := range map[string]string{
		"no name":   `{"flg_status_vm":true}`,
		"blank":     `{"nome_vm":"  ","flg_status_vm":true}`,
		"no status": `{"nome_vm":"vm1"}`,
		"not json":  `nope`,
	} {
		t.Run(name, func(t *testing.T) {
			r, mock := newTestRouter(t)
			w := do(r, http.MethodPost, "/api/vms", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"sucess":false`)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Fields absent from the patch stay untouched: the statement must only
// set the supplied columns.
func TestUpdatePartialPatch(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE virtual_machines SET nome_vm=?,flg_status_vm=? WHERE id=?")).
		WithArgs("x", true, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := do(r, http.MethodPatch, "/api/vms/1", `{"nome_vm":"x","flg_status_vm":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sucess":true}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

// An explicit null clears the nullable address column.
func TestUpdateClearAddress(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE virtual_machines SET endereco_ipv4_vm=? WHERE id=?")).
		WithArgs(nil, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := do(r, http.MethodPatch, "/api/vms/1", `{"endereco_ipv4_vm":null}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRejectsNullName(t *testing.T) {
	r, mock := newTestRouter(t)
	w := do(r, http.MethodPatch, "/api/vms/1", `{"nome_vm":null}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEmptyPatch(t *testing.T) {
	r, mock := newTestRouter(t)
	w := do(r, http.MethodPatch, "/api/vms/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnknownID(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE virtual_machines SET nome_vm=? WHERE id=?")).
		WithArgs("x", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := do(r, http.MethodPatch, "/api/vms/42", `{"nome_vm":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMalformedID(t *testing.T) {
	r, mock := newTestRouter(t)
	w := do(r, http.MethodPatch, "/api/vms/abc", `{"nome_vm":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM virtual_machines WHERE id=?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := do(r, http.MethodDelete, "/api/vms/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sucess":true}`, w.Body.String())
}

// Second delete of the same id reports absence; it never errors the store.
func TestDeleteTwice(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM virtual_machines WHERE id=?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM virtual_machines WHERE id=?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/api/vms/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/vms/1", "").Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deleting a machine that bots still reference surfaces the store's
// foreign-key restriction instead of suppressing it.
func TestDeleteReferencedMachine(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM virtual_machines WHERE id=?")).
		WithArgs(1).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "a foreign key constraint fails"})

	w := do(r, http.MethodDelete, "/api/vms/1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), `"sucess":false`)
	assert.NoError(t, mock.ExpectationsWereMet())
}
