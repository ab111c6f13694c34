// Package fuzztests houses Go fuzz harnesses for the analysis pipeline
// (source -> lexer -> preprocess -> parser -> inspector). They guard against
// panics, hangs and position drift on arbitrary input.
//
// Назначение: прогонять произвольные байты через лексер, парсер и инспектор и
// проверять инварианты из internal/testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
