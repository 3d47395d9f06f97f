package core

import (
	"log"
	"os"
	"path/filepath"
)

// Getwd tries to find the project root "backend".
// go-test changes the working directory to the test package being run during tests,
// which breaks relative config lookups.
// see: https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
// Falls back to the plain working directory when the root is not an ancestor
// (e.g. a deployed binary running from an install dir).
func Getwd() string {
	root := "backend"
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if fi, err := os.Stat(currDir); err == nil {
			if filepath.Base(currDir) == root && fi.IsDir() {
				return currDir
			}
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd
		}
		currDir = newDir
	}
}
