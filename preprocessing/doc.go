// Package preprocessing は特徴量行列に対するステートレスな前処理変換を提供する
//
// 提供する変換:
//   - MinMaxScale / RangeScale: 列ごとに[0,1]（または任意の範囲）へ線形変換
//   - StandardScale: 列ごとに平均0・標準偏差1へ変換（標本標準偏差, n-1）
//   - CustomScale: (x + offset) * factor を全要素に適用
//   - Binarize: x >= threshold なら1、それ以外は0
//
// どの変換も呼び出しのたびに入力から統計量を計算し直し、入力と同じ形状の
// 新しい *mat.Dense を返す。入力は変更されない。学習済みパラメータを保持して
// 別のデータに適用する機能はない。
//
// 値が全て同じ列（範囲0・分散0）はエラーにせず定数で埋める。
// MinMaxScale・StandardScaleでは0、RangeScaleでは範囲の下限になる。
//
// 連続適用にはChainを使う:
//
//	X := mat.NewDense(4, 2, []float64{-1, 2, -0.5, 6, 0, 10, 1, 18})
//	out, err := preprocessing.From(X).
//	    MinMaxScale().
//	    StandardScale().
//	    Binarize(0).
//	    Result()
//
// Transformerを組み合わせる場合はPipelineを使う。
package preprocessing
