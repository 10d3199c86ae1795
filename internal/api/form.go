package api

import (
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"

	"webkv/internal/kv"
)

// HTML forms only support GET and POST, so the page carries the intended
// method in a hidden "action" field and every dispatch decision is made
// on that field, never on the HTTP verb the browser actually used.

type action int

const (
	actionList action = iota
	actionInsert
	actionDelete
	// actionPut is a recognized "action" value with no operation behind
	// it; it answers 405 instead of the 422 unknown values get.
	actionPut
	actionUnknown
)

// resolveAction maps the optional "action" form field to an action.
// An absent field means List; anything unrecognized is actionUnknown.
func resolveAction(form url.Values) action {
	value, present := formField(form, "action")
	if !present {
		return actionList
	}
	switch value {
	case "GET":
		return actionList
	case "POST":
		return actionInsert
	case "DELETE":
		return actionDelete
	case "PUT":
		return actionPut
	default:
		return actionUnknown
	}
}

// formField distinguishes an absent field from one set to the empty
// string; the empty string is a legal key or value.
func formField(form url.Values, field string) (string, bool) {
	values, ok := form[field]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

var pageTmpl = template.Must(template.New("page").Parse(
	`<html><body><table>` +
		`{{range .}}<tr><form method="POST">` +
		`<td><input type="hidden" name="key" value="{{.Key}}">{{.Key}}</td>` +
		`<td>{{.Value}}</td>` +
		`<td><input type="submit" value="Delete"></td>` +
		`<input type="hidden" name="action" value="DELETE">` +
		`</form></tr>{{end}}` +
		`<tr><form method="POST">` +
		`<td><input type="text" name="key"></td>` +
		`<td><input type="text" name="value"></td>` +
		`<td><input type="submit" value="Insert"></td>` +
		`<input type="hidden" name="action" value="POST">` +
		`</form></tr>` +
		`</table></body></html>`))

// HandleForm serves the form page: it applies the mutation requested by
// the "action" body field, then renders the whole store as a table with
// one Delete row per entry and a trailing blank Insert row.
func HandleForm(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The body is decoded by hand rather than through ParseForm,
		// which only reads the body for POST, PUT and PATCH; the page
		// must dispatch on the "action" field under any verb.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		form, err := url.ParseQuery(string(body))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		switch resolveAction(form) {
		case actionList:
			// no mutation

		case actionInsert:
			key, hasKey := formField(form, "key")
			if !hasKey {
				http.Error(w, "Missing 'key' field", http.StatusUnprocessableEntity)
				return
			}
			value, hasValue := formField(form, "value")
			if !hasValue {
				http.Error(w, "Missing 'value' field", http.StatusUnprocessableEntity)
				return
			}
			log.Printf("[API] insert key=%q value=%q", key, value)
			store.Put(key, value)

		case actionDelete:
			key, hasKey := formField(form, "key")
			if !hasKey {
				http.Error(w, "Missing 'key' field", http.StatusUnprocessableEntity)
				return
			}
			log.Printf("[API] delete key=%q", key)
			store.Delete(key)

		case actionUnknown:
			http.Error(w, "Incorrect value for parameter 'action'", http.StatusUnprocessableEntity)
			return

		default:
			http.Error(w, "Only supports POST, GET, and DELETE", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, store.Entries()); err != nil {
			log.Printf("[ERROR] render: %v", err)
		}
	}
}
