package convert

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// StructAssign
// dst 目标结构体，src 源结构体
// 按字段名复制 src 的值到 dst，可转换的命名类型（如 timex.Time 与 time.Time）会自动转换
func StructAssign(src any, dst any) any {
	copier.Copy(dst, src)
	return dst
}

// GetStructFieldNames 返回传入结构体的所有字段名
func GetStructFieldNames(input interface{}) []string {
	getType := reflect.TypeOf(input)

	if getType.Kind() == reflect.Ptr {
		getType = getType.Elem()
	}

	if getType.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]string, 0, getType.NumField())
	for i := 0; i < getType.NumField(); i++ {
		fields = append(fields, getType.Field(i).Name)
	}

	return fields
}
