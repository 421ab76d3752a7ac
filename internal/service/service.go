package service

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"gitlab.com/dirk.krummacker/address-book/internal/model"
	"gitlab.com/dirk.krummacker/address-book/internal/storage"
)

// book is the address book served by the REST API.
var book *model.AddressBook

// store persists the book; it is written after every mutation.
var store storage.Store

// mu serializes access to the book, which itself is not safe for
// concurrent use.
var mu sync.Mutex

// SetupBook hydrates the address book from the given store and wires the
// store as the autosave hook. The store argument can be a real store for
// production use or one backed by a temporary directory within tests. A
// snapshot that cannot be restored counts as a first run.
func SetupBook(s storage.Store) {
	store = s
	state, err := s.Load()
	if err != nil {
		log.Println("could not load address book:", err)
		state = model.Book{}
	}
	loaded, err := model.FromSnapshot(state)
	if err != nil {
		log.Println("discarding unusable address book snapshot:", err)
		loaded = model.NewAddressBook()
	}
	book = loaded
	book.SetOnMutation(func() {
		if err := store.Save(book.Snapshot()); err != nil {
			log.Println("could not save address book:", err)
		}
	})
}

// SetupHttpRouter initializes the REST API router and registers all
// endpoints.
func SetupHttpRouter() *gin.Engine {
	var router *gin.Engine
	if strings.EqualFold(os.Getenv("GIN_LOGGING"), "off") {
		fmt.Println("Turning off HTTP request logging.")
		router = gin.New()
	} else {
		router = gin.Default()
	}
	router.GET("/records", listRecords)
	router.POST("/records", createRecord)
	router.GET("/records/:name", findRecordByName)
	router.DELETE("/records/:name", deleteRecordByName)
	router.POST("/records/:name/phones", addPhone)
	router.PUT("/records/:name/phones", editPhone)
	router.DELETE("/records/:name/phones/:number", removePhone)
	router.PUT("/records/:name/birthday", setBirthday)
	router.GET("/records/:name/birthday", daysToBirthday)
	router.GET("/search", searchRecords)
	router.POST("/book/save", saveBook)
	return router
}

// listRecords responds with one page of records as JSON.
//
// The URL parameter 'size' specifies how many records are returned per
// page; it defaults to the book's records-per-page setting. The URL
// parameter 'page' selects the 1-based page to return.
//
// REST API calls:
//
//	> curl "http://localhost:8080/records"
//	> curl "http://localhost:8080/records?page=2&size=2"
func listRecords(c *gin.Context) {
	page, size, success := parsePageAndSize(c)
	if !success {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	current := 1
	for batch := range book.Pages(size) {
		if current == page {
			c.IndentedJSON(http.StatusOK, recordsData(batch))
			return
		}
		current++
	}
	c.IndentedJSON(http.StatusNotFound, gin.H{"message": "no records on this page"})
}

// parsePageAndSize inspects the URL parameters and determines the page
// number and page size of the result set.
func parsePageAndSize(c *gin.Context) (page int, size int, success bool) {
	page = 1
	if value := c.Query("page"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid page parameter"})
			return 0, 0, false
		}
		page = parsed
	}
	if value := c.Query("size"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 1 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid size parameter"})
			return 0, 0, false
		}
		size = parsed
	}
	return page, size, true
}

// createRecord inserts the record specified in the request's JSON into
// the address book. If a record with the same name already exists, the
// stored record is returned untouched instead of being overwritten.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records --request "POST" --include --header "Content-Type: application/json" --data '{"name": "John", "phones": ["3333333333"], "birthday": "18.02.1990"}'
func createRecord(c *gin.Context) {
	var data model.RecordData
	if err := c.BindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	record, err := model.RecordFromData(data)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if existing, ok := book.Find(data.Name); ok {
		c.IndentedJSON(http.StatusOK, existing.Data())
		return
	}
	book.Add(record)
	c.IndentedJSON(http.StatusCreated, record.Data())
}

// findRecordByName locates the record whose name matches the name
// parameter of the request URL, then returns that record as a response.
// With 'format=text' the record is rendered as a single line instead.
//
// Example REST API calls:
//
//	> curl http://localhost:8080/records/John
//	> curl "http://localhost:8080/records/John?format=text"
func findRecordByName(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	record, ok := book.Find(c.Param("name"))
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	if c.Query("format") == "text" {
		c.String(http.StatusOK, record.String())
		return
	}
	c.IndentedJSON(http.StatusOK, record.Data())
}

// deleteRecordByName deletes the record whose name matches the name
// parameter of the request URL from the address book.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records/John --request "DELETE"
func deleteRecordByName(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	name := c.Param("name")
	if _, ok := book.Find(name); !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	book.Delete(name)
	c.IndentedJSON(http.StatusOK, gin.H{"message": "record deleted"})
}

// phoneRequest is the body of a phone mutation call. Add uses 'number',
// edit uses 'old' and 'new'.
type phoneRequest struct {
	Number string `json:"number"`
	Old    string `json:"old"`
	New    string `json:"new"`
}

// addPhone appends a phone number to a record. Adding a number the
// record already stores is a no-op.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records/John/phones --request "POST" --include --header "Content-Type: application/json" --data '{"number": "1234567890"}'
func addPhone(c *gin.Context) {
	var request phoneRequest
	if err := c.BindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	mu.Lock()
	defer mu.Unlock()
	record, ok := book.Find(c.Param("name"))
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	if err := record.AddPhone(request.Number); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	book.NotifyMutation()
	c.IndentedJSON(http.StatusOK, record.Data())
}

// editPhone replaces one phone number of a record with another, keeping
// its position in the phone list.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records/John/phones --request "PUT" --include --header "Content-Type: application/json" --data '{"old": "1234567890", "new": "1112223333"}'
func editPhone(c *gin.Context) {
	var request phoneRequest
	if err := c.BindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	mu.Lock()
	defer mu.Unlock()
	record, ok := book.Find(c.Param("name"))
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	if err := record.EditPhone(request.Old, request.New); err != nil {
		if errors.Is(err, model.ErrPhoneNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": err.Error()})
		} else {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		}
		return
	}
	book.NotifyMutation()
	c.IndentedJSON(http.StatusOK, record.Data())
}

// removePhone drops every phone of a record whose value equals the
// number parameter of the request URL. Removing an absent number is a
// no-op.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records/John/phones/1234567890 --request "DELETE"
func removePhone(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	record, ok := book.Find(c.Param("name"))
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	record.RemovePhone(c.Param("number"))
	book.NotifyMutation()
	c.IndentedJSON(http.StatusOK, record.Data())
}

// birthdayRequest is the body of a set-birthday call.
type birthdayRequest struct {
	Birthday string `json:"birthday"`
}

// setBirthday validates and replaces the birthday of a record.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records/John/birthday --request "PUT" --include --header "Content-Type: application/json" --data '{"birthday": "18.02.1990"}'
func setBirthday(c *gin.Context) {
	var request birthdayRequest
	if err := c.BindJSON(&request); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid JSON"})
		return
	}
	mu.Lock()
	defer mu.Unlock()
	record, ok := book.Find(c.Param("name"))
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	if err := record.SetBirthday(request.Birthday); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	book.NotifyMutation()
	c.IndentedJSON(http.StatusOK, record.Data())
}

// daysToBirthday responds with the number of days until the record's
// next birthday, or null when no birthday is set.
//
// Example REST API call:
//
//	> curl http://localhost:8080/records/John/birthday
func daysToBirthday(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	record, ok := book.Find(c.Param("name"))
	if !ok {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "record not found"})
		return
	}
	if days, ok := record.DaysToBirthday(time.Now()); ok {
		c.IndentedJSON(http.StatusOK, gin.H{"days_to_birthday": days})
	} else {
		c.IndentedJSON(http.StatusOK, gin.H{"days_to_birthday": nil})
	}
}

// searchRecords responds with all records whose name contains the 'term'
// URL parameter case-insensitively, or that store a phone number
// containing it.
//
// Example REST API call:
//
//	> curl "http://localhost:8080/search?term=john"
func searchRecords(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	results := book.Search(c.Query("term"))
	if len(results) == 0 {
		c.IndentedJSON(http.StatusNotFound, gin.H{"message": "no matching records"})
		return
	}
	c.IndentedJSON(http.StatusOK, recordsData(results))
}

// saveBook writes the book to the store on explicit request. Unlike the
// autosave hook, a failure here surfaces to the caller.
//
// Example REST API call:
//
//	> curl http://localhost:8080/book/save --request "POST"
func saveBook(c *gin.Context) {
	mu.Lock()
	defer mu.Unlock()
	if err := store.Save(book.Snapshot()); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"message": "address book saved"})
}

// recordsData converts records to their serializable form.
func recordsData(records []*model.Record) []model.RecordData {
	data := make([]model.RecordData, len(records))
	for i, r := range records {
		data[i] = r.Data()
	}
	return data
}
