package constants

import "fmt"

// User-facing messages. Clients show these verbatim.
const (
	MsgServerError      = "서버 오류가 발생했습니다."
	MsgAdminRequired    = "관리자 권한이 필요합니다."
	MsgPasswordRequired = "비밀번호를 입력해주세요."
	MsgPasswordMismatch = "비밀번호가 올바르지 않습니다."
	MsgInvalidBody      = "요청 형식이 올바르지 않습니다."
	MsgInvalidID        = "잘못된 ID입니다."
	MsgRequiredFields   = "필수 항목을 입력해주세요."
	MsgTitleContent     = "제목과 내용을 입력해주세요."
	MsgAnswerRequired   = "답변 내용을 입력해주세요."
	MsgInvalidPhone     = "올바른 연락처를 입력해주세요."
	MsgInvalidStatus    = "올바르지 않은 상태값입니다."
	MsgInvalidDate      = "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)"
	MsgInvalidMealType  = "올바르지 않은 식사 구분입니다."
	MsgMealRequired     = "날짜, 식사 유형, 메뉴를 입력해주세요."
	MsgInvalidResource  = "올바르지 않은 게시판 유형입니다."
	MsgTooManyRequests  = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요."
	MsgTooManyLogins    = "로그인 시도가 너무 많습니다. 잠시 후 다시 시도해주세요."

	MsgLoginRequired = "아이디와 비밀번호를 입력해주세요."
	MsgLoginFailed   = "아이디 또는 비밀번호가 올바르지 않습니다."
	MsgLoginOK       = "로그인되었습니다."
	MsgLogoutOK      = "로그아웃되었습니다."
	MsgLoginDisabled = "관리자 로그인이 설정되지 않았습니다."
)

// Per-resource message templates; the noun carries its own particle.
const (
	tmplNotFound = "%s 찾을 수 없습니다."
	tmplCreated  = "%s 등록되었습니다."
	tmplUpdated  = "%s 수정되었습니다."
	tmplDeleted  = "%s 삭제되었습니다."
)

// Resource names with the object particle (을/를) for "not found" and the
// subject particle (이/가) for the success messages.
type Noun struct {
	Object  string
	Subject string
}

var (
	NounNotice       = Noun{Object: "공지사항을", Subject: "공지사항이"}
	NounParentPost   = Noun{Object: "게시글을", Subject: "게시글이"}
	NounComment      = Noun{Object: "댓글을", Subject: "댓글이"}
	NounQna          = Noun{Object: "질문을", Subject: "질문이"}
	NounAnswer       = Noun{Object: "답변을", Subject: "답변이"}
	NounConsultation = Noun{Object: "상담 신청을", Subject: "상담 신청이"}
	NounMealPlan     = Noun{Object: "식단을", Subject: "식단이"}
	NounSuccessStory = Noun{Object: "합격 수기를", Subject: "합격 수기가"}
)

func NotFound(n Noun) string { return fmt.Sprintf(tmplNotFound, n.Object) }
func Created(n Noun) string  { return fmt.Sprintf(tmplCreated, n.Subject) }
func Updated(n Noun) string  { return fmt.Sprintf(tmplUpdated, n.Subject) }
func Deleted(n Noun) string  { return fmt.Sprintf(tmplDeleted, n.Subject) }
