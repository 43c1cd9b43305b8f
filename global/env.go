package global

import (
	"github.com/evanhugh/assistant-hub-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Assistant Hub Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
