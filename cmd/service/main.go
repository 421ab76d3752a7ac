package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gitlab.com/dirk.krummacker/address-book/internal/service"
	"gitlab.com/dirk.krummacker/address-book/internal/storage"
)

// Usage examples on the command line:
// > PORT=8080 BOOK_FILE=address_book.json go run main.go
// > PORT=8080 STORE=mysql DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go
func main() {
	var store storage.Store
	if strings.EqualFold(os.Getenv("STORE"), "mysql") {
		store = storage.NewSQLStore(storage.CreateDatabase())
	} else {
		path := os.Getenv("BOOK_FILE")
		if path == "" {
			path = "address_book.json"
		}
		store = storage.NewFileStore(path)
	}
	service.SetupBook(store)
	router := service.SetupHttpRouter()
	_, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		fmt.Println("could not parse PORT env variable", err)
		panic(err)
	}
	router.Run(":" + os.Getenv("PORT"))
}
