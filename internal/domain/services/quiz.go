package services

import (
	"math/rand"
	"sync"

	"scamguard/internal/domain/models"
)

// defaultQuizItems are the built-in training messages. Each one is either a
// realistic phishing sample or a legitimate notification of the same shape.
var defaultQuizItems = []models.QuizItem{
	{
		Subject:     "【重要】あなたのアカウントが一時停止されました",
		Body:        "セキュリティ上の理由により、アカウントを一時停止しました。24時間以内に以下のリンクから本人確認を行ってください。 http://security-update-login.com/verify",
		IsPhishing:  true,
		Explanation: "正規のサービスは見知らぬドメインへのリンクで本人確認を求めません。期限付きの脅し文句も典型的な手口です。",
	},
	{
		Subject:     "【Amazon】ご注文ありがとうございます",
		Body:        "ご注文いただいた商品を発送しました。配送状況は注文履歴からご確認いただけます。",
		IsPhishing:  false,
		Explanation: "リンクのクリックや個人情報の入力を求めておらず、通常の発送通知です。",
	},
	{
		Subject:     "【Apple ID】お支払い情報の確認が必要です",
		Body:        "お客様のApple IDのお支払い情報に問題があります。今すぐこちらで更新してください。 http://apple.login-check.xyz",
		IsPhishing:  true,
		Explanation: "Appleの正規ドメインではないリンク先に誘導しています。「今すぐ」と急かすのも危険信号です。",
	},
	{
		Subject:     "Your package could not be delivered",
		Body:        "We attempted delivery today but no one was home. Confirm your address immediately at http://delivery-confirm.tk/track to avoid return shipping fees.",
		IsPhishing:  true,
		Explanation: "Free .tk domains are heavily abused, and real carriers leave a slip rather than demanding urgent address confirmation by link.",
	},
	{
		Subject:     "Monthly statement is ready",
		Body:        "Your monthly account statement is now available. Log in to your account through the app or by typing the bank address yourself to view it.",
		IsPhishing:  false,
		Explanation: "The message tells you to navigate on your own instead of clicking an embedded link, which is what legitimate banks recommend.",
	},
	{
		Subject:     "Security alert: unusual sign-in detected",
		Body:        "We blocked a sign-in attempt from a new device. Verify your identity right now at http://192.168.45.12/secure or your account will be locked.",
		IsPhishing:  true,
		Explanation: "Links to a bare IP address and threats of locking the account are classic phishing pressure tactics.",
	},
}

// QuizEngine serves phishing-awareness quizzes and scores submitted answers.
// Answer keys never leave the server; the client only sees subjects, bodies,
// and the item order.
type QuizEngine struct {
	mu    sync.RWMutex
	items []models.QuizItem
	rng   *rand.Rand
}

// NewQuizEngine creates a quiz engine with the built-in items.
func NewQuizEngine(seed int64) *QuizEngine {
	items := make([]models.QuizItem, len(defaultQuizItems))
	copy(items, defaultQuizItems)
	return &QuizEngine{
		items: items,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Session returns all quiz items in a fresh random order.
func (q *QuizEngine) Session() models.QuizSession {
	q.mu.Lock()
	order := q.rng.Perm(len(q.items))
	q.mu.Unlock()

	q.mu.RLock()
	defer q.mu.RUnlock()

	questions := make([]models.QuizQuestion, len(order))
	for i, idx := range order {
		questions[i] = models.QuizQuestion{
			Index:   idx,
			Subject: q.items[idx].Subject,
			Body:    q.items[idx].Body,
		}
	}
	return models.QuizSession{
		Questions: questions,
		Total:     len(questions),
	}
}

// Score grades answers against the item order the client received. Each
// answer is the client's claim that the item at the same position in order
// is phishing. Indexes out of range and mismatched lengths score only the
// positions that line up.
func (q *QuizEngine) Score(order []int, answers []bool) models.QuizScoreResult {
	q.mu.RLock()
	defer q.mu.RUnlock()

	n := len(order)
	if len(answers) < n {
		n = len(answers)
	}

	result := models.QuizScoreResult{Total: len(q.items)}
	for i := 0; i < n; i++ {
		idx := order[i]
		if idx < 0 || idx >= len(q.items) {
			continue
		}
		item := q.items[idx]
		if answers[i] == item.IsPhishing {
			result.Score++
		}
		result.Explanations = append(result.Explanations, item.Explanation)
	}
	return result
}

// Len reports how many quiz items are loaded.
func (q *QuizEngine) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.items)
}
