package main

import (
	"github.com/best-serverless-nodejs-framework-xjs/ts-morph/token"

	"go.lsp.dev/protocol"
)

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if content[i] == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}

func offsetToPosition(pd *token.PosDoc, off int) protocol.Position {
	line, col := pd.LineCol(off)
	return protocol.Position{Line: uint32(line), Character: uint32(col)}
}

func spanToRange(pd *token.PosDoc, start, end int) protocol.Range {
	return protocol.Range{
		Start: offsetToPosition(pd, start),
		End:   offsetToPosition(pd, end),
	}
}
