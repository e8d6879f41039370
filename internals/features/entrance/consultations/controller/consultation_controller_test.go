package controller_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academy_backend/internals/features/entrance/consultations/model"
	"academy_backend/internals/testutil"
)

type fakeNotifier struct {
	mu   sync.Mutex
	sent []model.ConsultationModel
	err  error
}

func (f *fakeNotifier) NotifyConsultation(_ context.Context, m model.ConsultationModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return f.err
}

func validRequest() map[string]any {
	return map[string]any{
		"parent_name":  "김부모",
		"student_name": "김학생",
		"phone":        "010-1234-5678",
		"grade":        "고3",
		"dormitory":    "기숙사",
		"desired_date": "2025-03-10",
		"desired_time": "14:00",
		"message":      "상담 원합니다",
	}
}

func TestConsultation_Lifecycle(t *testing.T) {
	notifier := &fakeNotifier{}
	app := testutil.NewApp(t, testutil.NewDB(t), notifier)

	res := app.Do(t, http.MethodPost, "/api/consultations", validRequest(), nil)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)
	assert.Equal(t, "상담 신청이 등록되었습니다.", res.Body["message"])
	id := res.ID()

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, id, notifier.sent[0].ID)
	assert.Equal(t, "김학생", notifier.sent[0].StudentName)

	// admin-only reads
	res = app.Do(t, http.MethodGet, "/api/consultations", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	res = app.Do(t, http.MethodGet, fmt.Sprintf("/api/consultations/%d", id), nil, nil)
	assert.Equal(t, http.StatusUnauthorized, res.Status)

	cookie := app.Login(t)
	res = app.Do(t, http.MethodGet, "/api/consultations", nil, cookie)
	require.Equal(t, http.StatusOK, res.Status)
	require.Len(t, res.Items(), 1)
	assert.Equal(t, "대기", res.Items()[0]["status"])
	assert.EqualValues(t, 1, res.Body["pendingCount"])

	res = app.Do(t, http.MethodPut, fmt.Sprintf("/api/consultations/%d", id), map[string]any{"status": "보류"}, cookie)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	res = app.Do(t, http.MethodPut, fmt.Sprintf("/api/consultations/%d", id), map[string]any{"status": "확인"}, cookie)
	require.Equal(t, http.StatusOK, res.Status, res.Raw)

	res = app.Do(t, http.MethodGet, "/api/consultations", nil, cookie)
	require.Len(t, res.Items(), 1)
	assert.Equal(t, "확인", res.Items()[0]["status"])
	assert.EqualValues(t, 0, res.Body["pendingCount"])

	res = app.Do(t, http.MethodGet, "/api/consultations?status=대기", nil, cookie)
	assert.Empty(t, res.Items())

	res = app.Do(t, http.MethodPut, "/api/consultations/999", map[string]any{"status": "완료"}, cookie)
	assert.Equal(t, http.StatusNotFound, res.Status)

	res = app.Do(t, http.MethodDelete, fmt.Sprintf("/api/consultations/%d", id), nil, cookie)
	require.Equal(t, http.StatusOK, res.Status)
	res = app.Do(t, http.MethodGet, fmt.Sprintf("/api/consultations/%d", id), nil, cookie)
	assert.Equal(t, http.StatusNotFound, res.Status)
}

func TestConsultation_Validation(t *testing.T) {
	notifier := &fakeNotifier{}
	app := testutil.NewApp(t, testutil.NewDB(t), notifier)

	body := validRequest()
	body["phone"] = "call me maybe"
	res := app.Do(t, http.MethodPost, "/api/consultations", body, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "올바른 연락처를 입력해주세요.", res.Body["message"])

	body = validRequest()
	delete(body, "student_name")
	res = app.Do(t, http.MethodPost, "/api/consultations", body, nil)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "필수 항목을 입력해주세요.", res.Body["message"])

	body = validRequest()
	body["phone"] = "01012345678"
	body["parent_phone"] = "02-123-4567"
	res = app.Do(t, http.MethodPost, "/api/consultations", body, nil)
	assert.Equal(t, http.StatusCreated, res.Status, res.Raw)

	assert.Len(t, notifier.sent, 1, "rejected requests are not mailed")
}

func TestConsultation_NotifierFailureStillCreates(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	app := testutil.NewApp(t, testutil.NewDB(t), notifier)

	res := app.Do(t, http.MethodPost, "/api/consultations", validRequest(), nil)
	require.Equal(t, http.StatusCreated, res.Status, res.Raw)

	var count int64
	require.NoError(t, app.DB.Model(&model.ConsultationModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestConsultation_Search(t *testing.T) {
	app := testutil.NewApp(t, testutil.NewDB(t), nil)
	for _, name := range []string{"홍길동", "김철수", "홍서연"} {
		body := validRequest()
		body["student_name"] = name
		res := app.Do(t, http.MethodPost, "/api/consultations", body, nil)
		require.Equal(t, http.StatusCreated, res.Status)
	}
	cookie := app.Login(t)

	res := app.Do(t, http.MethodGet, "/api/consultations?search=홍", nil, cookie)
	require.Equal(t, http.StatusOK, res.Status)
	assert.Len(t, res.Items(), 2)
	assert.EqualValues(t, 2, res.Body["total"])
	assert.EqualValues(t, 3, res.Body["pendingCount"])
}
