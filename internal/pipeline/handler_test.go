package pipeline

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// fakeRepository guarda colunas e leads em memória e conta as movimentações
// para que os testes verifiquem quantos UPDATEs um drop gerou.
type fakeRepository struct {
	colunas    map[uint]Coluna
	leads      map[uint]Lead
	movimentos int
	deletadas  int
}

func novoFake() *fakeRepository {
	return &fakeRepository{colunas: map[uint]Coluna{}, leads: map[uint]Lead{}}
}

func (f *fakeRepository) SalvarColuna(_ *gorm.DB, c *Coluna) error {
	if c.ID == 0 {
		c.ID = uint(len(f.colunas) + 1)
	}
	f.colunas[c.ID] = *c
	return nil
}

func (f *fakeRepository) ListarColunas(_ *gorm.DB) ([]Coluna, error) {
	list := make([]Coluna, 0, len(f.colunas))
	for _, c := range f.colunas {
		list = append(list, c)
	}
	return list, nil
}

func (f *fakeRepository) BuscarColuna(_ *gorm.DB, id uint) (*Coluna, error) {
	c, ok := f.colunas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f *fakeRepository) AtualizarColuna(_ *gorm.DB, c *Coluna) error {
	f.colunas[c.ID] = *c
	return nil
}

func (f *fakeRepository) ContarColunas(_ *gorm.DB) (int64, error) {
	return int64(len(f.colunas)), nil
}

func (f *fakeRepository) DeletarColuna(_ *gorm.DB, id uint) error {
	delete(f.colunas, id)
	f.deletadas++
	return nil
}

func (f *fakeRepository) SalvarLead(_ *gorm.DB, l *Lead) error {
	if l.ID == 0 {
		l.ID = uint(len(f.leads) + 1)
	}
	f.leads[l.ID] = *l
	return nil
}

func (f *fakeRepository) ListarLeads(_ *gorm.DB) ([]Lead, error) {
	list := make([]Lead, 0, len(f.leads))
	for _, l := range f.leads {
		list = append(list, l)
	}
	return list, nil
}

func (f *fakeRepository) BuscarLead(_ *gorm.DB, id uint) (*Lead, error) {
	l, ok := f.leads[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (f *fakeRepository) AtualizarLead(_ *gorm.DB, l *Lead) error {
	f.leads[l.ID] = *l
	return nil
}

func (f *fakeRepository) MoverLead(_ *gorm.DB, leadID, colunaID uint) error {
	l := f.leads[leadID]
	l.ColunaID = colunaID
	f.leads[leadID] = l
	f.movimentos++
	return nil
}

func (f *fakeRepository) DeletarLead(_ *gorm.DB, id uint) error {
	delete(f.leads, id)
	return nil
}

func novoHandlerDeTeste(fake *fakeRepository) *Handler {
	return &Handler{Repository: fake}
}

func reqMover(t *testing.T, h *Handler, leadID string, colunaID uint) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(moverLeadRequest{ColunaID: colunaID})
	r := httptest.NewRequest(http.MethodPost, "/leads/"+leadID+"/mover", bytes.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"id": leadID})
	w := httptest.NewRecorder()
	h.MoverLead(w, r)
	return w
}

func TestMoverLeadMesmaColunaNaoAtualiza(t *testing.T) {
	fake := novoFake()
	fake.colunas[1] = Coluna{ID: 1, Nome: "Contato"}
	fake.leads[7] = Lead{ID: 7, Nome: "ACME", ColunaID: 1}

	w := reqMover(t, novoHandlerDeTeste(fake), "7", 1)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	if fake.movimentos != 0 {
		t.Errorf("movimentos = %d, esperado 0 (drop na mesma coluna)", fake.movimentos)
	}
	var l Lead
	if err := json.NewDecoder(w.Body).Decode(&l); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.ColunaID != 1 {
		t.Errorf("colunaId = %d, esperado 1", l.ColunaID)
	}
}

func TestMoverLeadParaOutraColuna(t *testing.T) {
	fake := novoFake()
	fake.colunas[1] = Coluna{ID: 1, Nome: "Contato"}
	fake.colunas[2] = Coluna{ID: 2, Nome: "Proposta"}
	fake.leads[7] = Lead{ID: 7, Nome: "ACME", ColunaID: 1}

	w := reqMover(t, novoHandlerDeTeste(fake), "7", 2)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, esperado 200", w.Code)
	}
	if fake.movimentos != 1 {
		t.Errorf("movimentos = %d, esperado exatamente 1", fake.movimentos)
	}
	if fake.leads[7].ColunaID != 2 {
		t.Errorf("colunaId persistido = %d, esperado 2", fake.leads[7].ColunaID)
	}
	var l Lead
	if err := json.NewDecoder(w.Body).Decode(&l); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.ColunaID != 2 {
		t.Errorf("colunaId na resposta = %d, esperado 2", l.ColunaID)
	}
}

func TestMoverLeadColunaDestinoInexistente(t *testing.T) {
	fake := novoFake()
	fake.colunas[1] = Coluna{ID: 1, Nome: "Contato"}
	fake.leads[7] = Lead{ID: 7, Nome: "ACME", ColunaID: 1}

	w := reqMover(t, novoHandlerDeTeste(fake), "7", 99)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, esperado 400", w.Code)
	}
	if fake.movimentos != 0 {
		t.Errorf("movimentos = %d, esperado 0", fake.movimentos)
	}
}

func TestMoverLeadInexistente(t *testing.T) {
	fake := novoFake()
	fake.colunas[1] = Coluna{ID: 1, Nome: "Contato"}

	w := reqMover(t, novoHandlerDeTeste(fake), "42", 1)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, esperado 404", w.Code)
	}
}

func TestDeletarUltimaColunaRecusada(t *testing.T) {
	fake := novoFake()
	fake.colunas[1] = Coluna{ID: 1, Nome: "Contato"}
	h := novoHandlerDeTeste(fake)

	r := httptest.NewRequest(http.MethodDelete, "/colunas/1", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.DeletarColuna(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, esperado 409", w.Code)
	}
	if fake.deletadas != 0 {
		t.Errorf("deleções = %d, esperado 0", fake.deletadas)
	}
}

func TestDeletarColunaComOutrasRestantes(t *testing.T) {
	fake := novoFake()
	fake.colunas[1] = Coluna{ID: 1, Nome: "Contato"}
	fake.colunas[2] = Coluna{ID: 2, Nome: "Proposta"}
	h := novoHandlerDeTeste(fake)

	r := httptest.NewRequest(http.MethodDelete, "/colunas/2", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "2"})
	w := httptest.NewRecorder()
	h.DeletarColuna(w, r)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, esperado 204", w.Code)
	}
	if fake.deletadas != 1 {
		t.Errorf("deleções = %d, esperado 1", fake.deletadas)
	}
}
