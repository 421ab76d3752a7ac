package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gitlab.com/dirk.krummacker/address-book/pkg/model"
)

const baseURL = "http://localhost:8080"

// main walks through a small demo session against a running address book
// service: it creates two records, adjusts their phones and birthdays,
// pages through the book and runs a search.
//
// Usage example on the command line:
// > go run main.go
func main() {
	sendJSON("POST", "/records", model.RecordData{
		Name:     "John",
		Phones:   []string{"3333333333", "4444444444"},
		Birthday: "18.02.1990",
	})
	sendJSON("POST", "/records/John/phones", map[string]string{"number": "1234567890"})
	sendJSON("POST", "/records/John/phones", map[string]string{"number": "5555555555"})
	sendJSON("PUT", "/records/John/phones", map[string]string{"old": "1234567890", "new": "1112223333"})

	sendJSON("POST", "/records", model.RecordData{Name: "Jane"})
	sendJSON("POST", "/records/Jane/phones", map[string]string{"number": "9876543210"})
	sendJSON("PUT", "/records/Jane/birthday", map[string]string{"birthday": "10.03.1970"})
	sendJSON("PUT", "/records/Jane/birthday", map[string]string{"birthday": "11.03.1970"})

	fmt.Println(fetchText("/records/John?format=text"))
	fmt.Println(fetchText("/records/Jane?format=text"))

	fmt.Println()
	for page := 1; ; page++ {
		records, status := fetchRecords(fmt.Sprintf("/records?page=%d&size=2", page))
		if status != http.StatusOK {
			break
		}
		fmt.Printf("--- page %d ---\n", page)
		for _, record := range records {
			fmt.Printf("%s: %s\n", record.Name, strings.Join(record.Phones, "; "))
		}
	}

	fmt.Println()
	results, status := fetchRecords("/search?term=john")
	if status != http.StatusOK {
		fmt.Println("No matching results.")
		return
	}
	fmt.Println("Search results:")
	for _, record := range results {
		fmt.Println(record.Name)
	}
}

// sendJSON executes an HTTP request with a JSON body against the service
// and panics on transport failure, which is good enough for a demo.
func sendJSON(method string, path string, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	request, err := http.NewRequest(method, baseURL+path, bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	request.Header.Set("Content-Type", "application/json")
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		panic(err)
	}
	defer response.Body.Close()
	if response.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(response.Body)
		fmt.Printf("%s %s failed: %s\n", method, path, payload)
	}
}

// fetchText returns the body of a GET request as plain text.
func fetchText(path string) string {
	response, err := http.Get(baseURL + path)
	if err != nil {
		panic(err)
	}
	defer response.Body.Close()
	body, err := io.ReadAll(response.Body)
	if err != nil {
		panic(err)
	}
	return string(body)
}

// fetchRecords returns the records of a GET request along with the HTTP
// status code.
func fetchRecords(path string) ([]model.RecordData, int) {
	response, err := http.Get(baseURL + path)
	if err != nil {
		panic(err)
	}
	defer response.Body.Close()
	var records []model.RecordData
	if response.StatusCode == http.StatusOK {
		if err := json.NewDecoder(response.Body).Decode(&records); err != nil {
			panic(err)
		}
	}
	return records, response.StatusCode
}
