package employee

import "errors"

var (
	// ErrEmployeeNotFound は社員が存在しない場合に返却されます。
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmailAlreadyExists はメールアドレス重複時に返却されます。
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrEmployeeNumberAlreadyExists は社員番号重複時に返却されます。
	ErrEmployeeNumberAlreadyExists = errors.New("employee number already exists")
	// ErrEmployeeAlreadyExists は特定フィールドに帰属できない一意制約違反時に
	// 返却されます。
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
	// ErrInvalidLookupKey は検索キー設定が不正な場合に返却されます。
	ErrInvalidLookupKey = errors.New("invalid lookup key")
	// ErrStoreUnavailable はストアに到達できない場合に返却されます。
	ErrStoreUnavailable = errors.New("store unavailable")
)
