package mysql

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL 错误码 1062：违反唯一键约束
const errDuplicateEntry = 1062

// IsDuplicateEntry 判断错误是否为唯一键冲突。
// 唯一性最终由数据库约束保证，服务层的预检查只能缩小竞争窗口。
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == errDuplicateEntry
	}
	return false
}
