// Package drill drives the exercises and renders their report.
//
// The default report reproduces the classroom output exactly:
//
//	問題1: 配列操作 - データ集計
//	合計: 1000
//
//	問題2: オブジェクトとループ - 社員データフィルタリング
//	Bob
//
//	問題3: 配列ソートとオブジェクト比較
//	1
//	2
//	3
//
// English headings are available through MatchLanguage("en").
package drill
