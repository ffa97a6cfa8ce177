package http

import (
	"net/http"
	"strconv"

	"github.com/Xiphoseer/paradox-typed-db/pkg/typed"
)

// Handler serves the read-only query API over a loaded database.
type Handler struct {
	db *typed.Database
}

// NewHandler creates a handler bound to the given database.
func NewHandler(db *typed.Database) *Handler {
	return &Handler{db: db}
}

// Routes returns the route table of the query API.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v0/icons/{id}", h.handleIcon)
	mux.HandleFunc("GET /v0/missions/{id}", h.handleMission)
	mux.HandleFunc("GET /v0/objects/{id}", h.handleObject)
	mux.HandleFunc("GET /v0/skills/{id}", h.handleSkill)
	mux.HandleFunc("GET /v0/tables", h.handleTables)
	mux.HandleFunc("GET /v0/tables/{name}", h.handleTableRows)
	mux.HandleFunc("GET /v0/tables/{name}/{key}", h.handleTableRow)
	return mux
}

// pathID parses the {id} path segment as a signed 32-bit id.
func pathID(r *http.Request, name string) (int32, bool) {
	v, err := strconv.ParseInt(r.PathValue(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// IconResponse is the response of GET /v0/icons/{id}.
type IconResponse struct {
	ID   int32  `json:"id"`
	Path string `json:"path"`
}

func (h *Handler) handleIcon(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid icon id", requestID)
		return
	}

	path, ok := h.db.GetIconPath(id)
	if !ok {
		writeError(w, http.StatusNotFound, "icon not found", requestID)
		return
	}

	writeJSON(w, http.StatusOK, IconResponse{ID: id, Path: path.Decode()})
}

// MissionResponse is the response of GET /v0/missions/{id}.
type MissionResponse struct {
	ID      int32               `json:"id"`
	Mission typed.Mission       `json:"mission"`
	Tasks   []typed.MissionTask `json:"tasks"`
}

func (h *Handler) handleMission(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid mission id", requestID)
		return
	}

	mission, ok := h.db.GetMissionData(id)
	if !ok {
		writeError(w, http.StatusNotFound, "mission not found", requestID)
		return
	}

	writeJSON(w, http.StatusOK, MissionResponse{
		ID:      id,
		Mission: mission,
		Tasks:   h.db.GetMissionTasks(id),
	})
}

// ObjectResponse is the response of GET /v0/objects/{id}.
type ObjectResponse struct {
	ID          int32            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	RenderImage *string          `json:"render_image"`
	Components  typed.Components `json:"components"`
}

func (h *Handler) handleObject(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid object id", requestID)
		return
	}

	title, desc, ok := h.db.GetObjectNameDesc(id)
	if !ok {
		writeError(w, http.StatusNotFound, "object not found", requestID)
		return
	}

	resp := ObjectResponse{
		ID:          id,
		Title:       title,
		Description: desc,
		Components:  h.db.GetComponents(id),
	}
	if resp.Components.Render != nil {
		if img, ok := h.db.GetRenderImage(*resp.Components.Render); ok {
			s := img.Decode()
			resp.RenderImage = &s
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSkill(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid skill id", requestID)
		return
	}

	skill, ok := h.db.Skills.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "skill not found", requestID)
		return
	}

	writeJSON(w, http.StatusOK, skill.Record())
}

// TablesResponse is the response of GET /v0/tables.
type TablesResponse struct {
	Tables []TableInfo `json:"tables"`
}

// TableInfo summarizes one table of the loaded database.
type TableInfo struct {
	Name    string `json:"name"`
	Columns int    `json:"columns"`
	Buckets int    `json:"buckets"`
	Rows    int    `json:"rows"`
}

func (h *Handler) handleTables(w http.ResponseWriter, r *http.Request) {
	tables := h.db.Store().Tables()
	resp := TablesResponse{Tables: make([]TableInfo, 0, len(tables))}
	for _, t := range tables {
		resp.Tables = append(resp.Tables, TableInfo{
			Name:    t.Name(),
			Columns: len(t.Columns()),
			Buckets: t.BucketCount(),
			Rows:    t.RowCount(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleTableRows(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	table, ok := h.db.Store().TableByName(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "table not found", requestID)
		return
	}

	data, err := typed.MarshalTableRows(table)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to serialize table", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) handleTableRow(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	table, ok := h.db.Store().TableByName(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "table not found", requestID)
		return
	}
	key, ok := pathID(r, "key")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid row key", requestID)
		return
	}
	if table.BucketCount() == 0 {
		writeError(w, http.StatusNotFound, "row not found", requestID)
		return
	}

	// First-match semantics on the primary key column.
	for _, row := range table.BucketForHash(uint32(key)).Rows() {
		f, ok := row.FieldAt(0)
		if !ok || !f.IsInteger(key) {
			continue
		}
		data, err := typed.MarshalRow(table, row)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to serialize row", requestID)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(data)
		return
	}

	writeError(w, http.StatusNotFound, "row not found", requestID)
}
