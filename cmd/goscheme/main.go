package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goscheme/goscheme"
	"github.com/mattn/go-isatty"
)

const prompt = "goscheme> "

func repl() {
	env := goscheme.NewEnv(nil)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			break
		}
		ret, err := goscheme.Eval(line, env)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(ret)
	}
	fmt.Println("Goodbye")
}

func run(r io.Reader) {
	b, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	ret, err := goscheme.Eval(string(b), goscheme.NewEnv(nil))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(ret)
}

func main() {
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		run(f)
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl()
		return
	}
	run(os.Stdin)
}
