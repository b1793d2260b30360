package main

import (
	"errors"
	"sync"

	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/debug"
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/morph"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri      string
	content  string
	version  int32
	mdoc     *morph.Document
	parseErr error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

// put records the document content and keeps the wrapper tree alive across
// versions: an existing morph document is reconciled against the new text
// rather than rebuilt, so any wrappers held by features keep their identity.
func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	prev := ds.docs[uri]
	next := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	if prev != nil && prev.mdoc != nil {
		err := prev.mdoc.SetText([]byte(content))
		if err == nil {
			next.mdoc = prev.mdoc
			ds.docs[uri] = next
			return
		}
		if errors.Is(err, morph.ErrContract) {
			if debug.LSP() {
				debug.Logf("lsp: reconcile of %s failed, reopening: %v\n", uri, err)
			}
		} else {
			next.parseErr = err
			next.mdoc = prev.mdoc
			ds.docs[uri] = next
			return
		}
	}
	mdoc, err := morph.Open([]byte(content))
	if err != nil {
		next.parseErr = err
	} else {
		next.mdoc = mdoc
	}
	ds.docs[uri] = next
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
