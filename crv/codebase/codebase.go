package codebase

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/crvicio/crvc/crv/parser"
)

// Codebase tracks every source file under a root directory together with
// its latest parse result. All methods are safe for concurrent use.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	symbols []Symbol
}

// FileInfo is the cached state of one source file. Program is nil when
// the last update failed to parse; Diagnostics holds the errors of the
// last update, empty when it was clean.
type FileInfo struct {
	Path        string
	Content     []byte
	Program     *parser.Program
	Diagnostics []Diagnostic
}

// Diagnostic is a reported problem at a source position.
type Diagnostic struct {
	Pos     parser.Position
	Message string
}

// SymbolKind distinguishes the top-level declarations a file contributes.
type SymbolKind int

const (
	SymbolMission SymbolKind = iota
	SymbolGlobal
	SymbolNamespace
)

// Symbol is a top-level declaration visible across the codebase.
type Symbol struct {
	Name       string
	Kind       SymbolKind
	Parameters []string
	File       string
	Pos        parser.Position
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll walks the root directory and updates every source file found.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".crv" {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile reparses one file and refreshes the symbol table. Lexing
// runs in tolerant mode so that stray characters surface as a syntax
// diagnostic instead of cutting the token stream short.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateFileLocked(path, content)
}

func (c *Codebase) updateFileLocked(path string, content []byte) error {
	info := &FileInfo{Path: path, Content: content}

	tokens, err := parser.Tokenize(content, filepath.Base(path), parser.Tolerant())
	if err != nil {
		info.Diagnostics = append(info.Diagnostics, diagnosticFromError(err))
	} else {
		program, err := parser.Parse(tokens)
		if err != nil {
			info.Diagnostics = append(info.Diagnostics, diagnosticFromError(err))
		} else {
			info.Program = program
		}
	}

	c.files[path] = info
	c.rebuildSymbolsLocked()
	return nil
}

func diagnosticFromError(err error) Diagnostic {
	var lerr *parser.LexicalError
	if errors.As(err, &lerr) {
		return Diagnostic{Pos: lerr.Pos, Message: lerr.Error()}
	}
	var serr *parser.SyntaxError
	if errors.As(err, &serr) {
		return Diagnostic{Pos: serr.Pos, Message: serr.Error()}
	}
	return Diagnostic{Message: err.Error()}
}

func (c *Codebase) rebuildSymbolsLocked() {
	var all []Symbol
	for _, f := range c.files {
		if f.Program == nil {
			continue
		}
		all = append(all, fileSymbols(f.Path, f.Program.Body, "")...)
	}
	c.symbols = all
}

// fileSymbols flattens declarations; namespace members get a dotted name.
func fileSymbols(path string, decls []parser.Decl, prefix string) []Symbol {
	var symbols []Symbol
	for _, decl := range decls {
		switch d := decl.(type) {
		case *parser.MissionDef:
			symbols = append(symbols, Symbol{
				Name:       prefix + d.Name,
				Kind:       SymbolMission,
				Parameters: d.Parameters,
				File:       path,
				Pos:        d.Pos,
			})
		case *parser.GlobalVarDecl:
			symbols = append(symbols, Symbol{
				Name: prefix + d.Name,
				Kind: SymbolGlobal,
				File: path,
				Pos:  d.Pos,
			})
		case *parser.NamespaceDecl:
			symbols = append(symbols, Symbol{
				Name: prefix + d.Name,
				Kind: SymbolNamespace,
				File: path,
				Pos:  d.Pos,
			})
			symbols = append(symbols, fileSymbols(path, d.Body, prefix+d.Name+".")...)
		}
	}
	return symbols
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
	c.rebuildSymbolsLocked()
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

func (c *Codebase) AllSymbols() []Symbol {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.symbols
}

func (c *Codebase) FindSymbol(name string) *Symbol {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.symbols {
		if c.symbols[i].Name == name {
			return &c.symbols[i]
		}
	}
	return nil
}

// Diagnostics returns the problems recorded for one file.
func (c *Codebase) Diagnostics(path string) []Diagnostic {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if f := c.files[path]; f != nil {
		return f.Diagnostics
	}
	return nil
}
