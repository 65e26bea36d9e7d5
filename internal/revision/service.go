// Package revision keeps a git history of every save to a singleton page
// document. Each page gets its own repository with a single main branch; a
// save is one commit of the sanitized document.
package revision

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Entry is one recorded save of a page.
type Entry struct {
	Hash      string    `json:"hash"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	baseDir string
	lockMu  sync.Mutex
	locks   map[string]*sync.Mutex
}

func New(baseDir string) *Service {
	return &Service{
		baseDir: baseDir,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Record commits the document as the new head of the page's history,
// initializing the repository on first save.
func (s *Service) Record(page string, doc json.RawMessage, author string) (Entry, error) {
	lock := s.pageLock(page)
	lock.Lock()
	defer lock.Unlock()

	repo, err := s.ensureRepo(page)
	if err != nil {
		return Entry{}, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return Entry{}, fmt.Errorf("open worktree: %w", err)
	}

	pretty, err := indent(doc)
	if err != nil {
		return Entry{}, err
	}
	if err := os.WriteFile(filepath.Join(s.repoPath(page), "document.json"), pretty, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write document: %w", err)
	}
	if _, err := worktree.Add("document.json"); err != nil {
		return Entry{}, fmt.Errorf("git add document: %w", err)
	}

	hash, err := worktree.Commit(fmt.Sprintf("Save %s", page), &git.CommitOptions{
		Author: signature(author),
	})
	if errors.Is(err, git.ErrEmptyCommit) {
		// Nothing changed since the last save; report the current head.
		return s.head(repo)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("commit document: %w", err)
	}

	commitObj, err := repo.CommitObject(hash)
	if err != nil {
		return Entry{}, fmt.Errorf("read commit object: %w", err)
	}
	return toEntry(commitObj), nil
}

// History lists the page's saves, newest first.
func (s *Service) History(page string, limit int) ([]Entry, error) {
	lock := s.pageLock(page)
	lock.Lock()
	defer lock.Unlock()

	repo, err := git.PlainOpen(s.repoPath(page))
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}

	ref, err := repo.Reference(plumbing.NewBranchReferenceName("main"), true)
	if err != nil {
		return nil, fmt.Errorf("resolve main: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	items := make([]Entry, 0, limit)
	count := 0
	err = iter.ForEach(func(commitObj *object.Commit) error {
		items = append(items, toEntry(commitObj))
		count++
		if limit > 0 && count >= limit {
			return io.EOF
		}
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("iterate log: %w", err)
	}
	return items, nil
}

// DocumentAt returns the page document as of a given commit.
func (s *Service) DocumentAt(page, hash string) (json.RawMessage, error) {
	lock := s.pageLock(page)
	lock.Lock()
	defer lock.Unlock()

	repo, err := git.PlainOpen(s.repoPath(page))
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}

	resolved, err := repo.ResolveRevision(plumbing.Revision(hash))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %s: %w", hash, err)
	}
	commitObj, err := repo.CommitObject(*resolved)
	if err != nil {
		return nil, fmt.Errorf("read commit %s: %w", hash, err)
	}

	file, err := commitObj.File("document.json")
	if err != nil {
		return nil, fmt.Errorf("load document from commit: %w", err)
	}
	reader, err := file.Reader()
	if err != nil {
		return nil, fmt.Errorf("open document reader: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read document bytes: %w", err)
	}
	return json.RawMessage(raw), nil
}

func (s *Service) ensureRepo(page string) (*git.Repository, error) {
	path := s.repoPath(page)
	repo, err := git.PlainOpen(path)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("open repo: %w", err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create repo dir: %w", err)
	}
	repo, err = git.PlainInit(path, false)
	if err != nil {
		return nil, fmt.Errorf("init repo: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("open worktree: %w", err)
	}
	if err := os.WriteFile(filepath.Join(path, "document.json"), []byte("{}\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write initial document: %w", err)
	}
	if _, err := worktree.Add("document.json"); err != nil {
		return nil, fmt.Errorf("git add initial document: %w", err)
	}
	hash, err := worktree.Commit("Initialize page history", &git.CommitOptions{
		Author: signature("system"),
	})
	if err != nil {
		return nil, fmt.Errorf("commit initial document: %w", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.NewBranchReferenceName("main"), hash)); err != nil {
		return nil, fmt.Errorf("set main branch ref: %w", err)
	}
	if err := repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))); err != nil {
		return nil, fmt.Errorf("set HEAD to main: %w", err)
	}
	return repo, nil
}

func (s *Service) head(repo *git.Repository) (Entry, error) {
	ref, err := repo.Reference(plumbing.NewBranchReferenceName("main"), true)
	if err != nil {
		return Entry{}, fmt.Errorf("resolve main: %w", err)
	}
	commitObj, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return Entry{}, fmt.Errorf("read head commit: %w", err)
	}
	return toEntry(commitObj), nil
}

func (s *Service) repoPath(page string) string {
	return filepath.Join(s.baseDir, page)
}

func (s *Service) pageLock(page string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	lock, ok := s.locks[page]
	if ok {
		return lock
	}
	lock = &sync.Mutex{}
	s.locks[page] = lock
	return lock
}

func signature(author string) *object.Signature {
	if author == "" {
		author = "admin"
	}
	return &object.Signature{
		Name:  author,
		Email: author + "@clinic.local",
		When:  time.Now(),
	}
}

func toEntry(commitObj *object.Commit) Entry {
	return Entry{
		Hash:      commitObj.Hash.String()[:7],
		Message:   commitObj.Message,
		Author:    commitObj.Author.Name,
		CreatedAt: commitObj.Author.When,
	}
}

func indent(doc json.RawMessage) ([]byte, error) {
	if len(doc) == 0 {
		doc = json.RawMessage("{}")
	}
	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return append(pretty, '\n'), nil
}
