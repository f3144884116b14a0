package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"permissioned-registry/codec"
	"permissioned-registry/storage"
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Key       string
	Namespace string
	Identity  string
	Detail    string
}

type RowMapper func(ns storage.Namespace, row storage.Row) InspectRow

type PageData struct {
	Namespace  string
	Namespaces []storage.Namespace
	Items      []InspectRow
	Error      string
}

// NewDebugServer serves a read-only HTML view of one namespace at a time,
// selected with ?namespace=config|writers|messages.
func NewDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, log *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Query().Get("namespace")
		if name == "" {
			name = string(storage.WritersNamespace)
		}
		data := PageData{Namespace: name, Namespaces: storage.Namespaces}

		ns, ok := storage.ParseNamespace(name)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			data.Error = fmt.Sprintf("unknown namespace %q", name)
		} else if rows, err := storage.Dump(db, ns); err != nil {
			log.Error("Inspect failed", "namespace", ns, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			data.Error = err.Error()
		} else {
			for _, row := range rows {
				data.Items = append(data.Items, mapper(ns, row))
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	return &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", port),
		Handler: mux,
	}
}

// DefaultMapper shows the identity part of the key and the value in CBOR
// diagnostic notation.
func DefaultMapper(ns storage.Namespace, row storage.Row) InspectRow {
	inspectRow := InspectRow{
		Key:       row.Key,
		Namespace: string(ns),
		Identity:  "-",
		Detail:    "Size: " + strconv.Itoa(len(row.Value)) + " bytes",
	}
	if id, ok := ns.IdentityFromKey([]byte(row.Key)); ok {
		inspectRow.Identity = id.String()
	}
	if diag, err := codec.Diagnose(row.Value); err == nil && diag != "" {
		inspectRow.Detail = diag
	}
	return inspectRow
}
