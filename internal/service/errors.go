package service

import (
	"errors"
	"fmt"
)

// 三类可恢复错误的根哨兵；具体错误用 %w 包裹其一，
// handler 层用 errors.Is 映射到 400 / 404 / 403
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrPermission = errors.New("permission denied")
)

var (
	ErrEmptyText     = fmt.Errorf("%w: post text is empty", ErrValidation)
	ErrTextTooLong   = fmt.Errorf("%w: post text exceeds limit", ErrValidation)
	ErrEmptyTitle    = fmt.Errorf("%w: group title is empty", ErrValidation)
	ErrTitleTooLong  = fmt.Errorf("%w: group title exceeds limit", ErrValidation)
	ErrFollowSelf    = fmt.Errorf("%w: cannot follow self", ErrValidation)
	ErrSlugTaken     = fmt.Errorf("%w: slug already taken", ErrValidation)
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrValidation)

	ErrPostNotFound  = fmt.Errorf("%w: post", ErrNotFound)
	ErrGroupNotFound = fmt.Errorf("%w: group", ErrNotFound)
	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)

	ErrNotAuthor = fmt.Errorf("%w: only the author may edit", ErrPermission)

	ErrBadCredentials = fmt.Errorf("%w: bad credentials", ErrValidation)
)
