package integrationtest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"gitlab.com/dirk.krummacker/address-book/internal/service"
	"gitlab.com/dirk.krummacker/address-book/internal/storage"
)

// run executes one HTTP request against the router and returns the
// response.
func run(router *gin.Engine, method string, url string, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(method, url, strings.NewReader(body))
	router.ServeHTTP(recorder, request)
	return recorder
}

// TestAddressBookHappyPath drives the full demo scenario through the
// REST API backed by a file store, restarts the service on the same
// store and verifies the reloaded state.
func TestAddressBookHappyPath(t *testing.T) {
	store := storage.NewFileStore(filepath.Join(t.TempDir(), "address_book.json"))
	service.SetupBook(store)
	gin.SetMode(gin.ReleaseMode)
	router := service.SetupHttpRouter()

	// create John with two phones and a birthday
	recorder := run(router, "POST", "/records", `
		{
			"name": "John",
			"phones": ["3333333333", "4444444444"],
			"birthday": "18.02.1990"
		}
	`)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	// extend and edit John's phones
	recorder = run(router, "POST", "/records/John/phones", `{"number": "1234567890"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = run(router, "POST", "/records/John/phones", `{"number": "5555555555"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = run(router, "PUT", "/records/John/phones", `{"old": "1234567890", "new": "1112223333"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// create Jane and set her birthday twice
	recorder = run(router, "POST", "/records", `{"name": "Jane"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	recorder = run(router, "POST", "/records/Jane/phones", `{"number": "9876543210"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = run(router, "PUT", "/records/Jane/birthday", `{"birthday": "10.03.1970"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	recorder = run(router, "PUT", "/records/Jane/birthday", `{"birthday": "11.03.1970"}`)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// John renders with the edited phone kept in place
	recorder = run(router, "GET", "/records/John?format=text", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t,
		"Contact name: John, phones: 3333333333; 4444444444; 1112223333; 5555555555, birthday: 18.02.1990",
		recorder.Body.String())

	// paging with size 2 yields one full page and one remainder page
	recorder = run(router, "GET", "/records?page=1&size=2", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	var records []map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &records)
	assert.Len(t, records, 2)
	assert.Equal(t, "John", records[0]["name"])
	assert.Equal(t, "Jane", records[1]["name"])
	recorder = run(router, "GET", "/records?page=2&size=2", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// search by name fragment and by phone fragment
	recorder = run(router, "GET", "/search?term=jane", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	records = nil
	json.Unmarshal(recorder.Body.Bytes(), &records)
	assert.Len(t, records, 1)
	assert.Equal(t, "Jane", records[0]["name"])

	recorder = run(router, "GET", "/search?term=555", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	records = nil
	json.Unmarshal(recorder.Body.Bytes(), &records)
	assert.Len(t, records, 1)
	assert.Equal(t, "John", records[0]["name"])

	// restart the service on the same store and verify the reloaded state
	service.SetupBook(store)
	router = service.SetupHttpRouter()

	recorder = run(router, "GET", "/records/John", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	var john map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &john)
	assert.Equal(t,
		[]interface{}{"3333333333", "4444444444", "1112223333", "5555555555"},
		john["phones"])
	assert.Equal(t, "18.02.1990", john["birthday"])

	recorder = run(router, "GET", "/records/Jane", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	var jane map[string]interface{}
	json.Unmarshal(recorder.Body.Bytes(), &jane)
	assert.Equal(t, []interface{}{"9876543210"}, jane["phones"])
	assert.Equal(t, "11.03.1970", jane["birthday"])

	// delete Jane and make sure she stays gone after another restart
	recorder = run(router, "DELETE", "/records/Jane", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	service.SetupBook(store)
	router = service.SetupHttpRouter()
	recorder = run(router, "GET", "/records/Jane", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
