//go:build mobile

// embed.go - 移动端数据表嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需把根目录的 data/ 复制到此目录（cp -r data mobile/data）。
package mobile

import "embed"

//go:embed data/*.yaml
var dataFS embed.FS
