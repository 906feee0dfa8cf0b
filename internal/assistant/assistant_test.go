package assistant

import (
	"math/rand"
	"strings"
	"testing"
)

func newTestAssistant() *Assistant {
	return New(rand.New(rand.NewSource(1)))
}

func containsResponse(pool []string, reply string) bool {
	for _, r := range pool {
		if r == reply {
			return true
		}
	}
	return false
}

func TestReply_MatchesKeyword(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("yarın için program yapmak istiyorum")
	if !containsResponse(rules[1].responses, reply) {
		t.Errorf("program kuralının havuzundan yanıt beklenirdi, gelen %q", reply)
	}
}

func TestReply_CaseInsensitive(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("Merhaba!")
	if !containsResponse(rules[0].responses, reply) {
		t.Errorf("selamlama kuralının havuzundan yanıt beklenirdi, gelen %q", reply)
	}
}

func TestReply_FirstMatchingRuleWins(t *testing.T) {
	a := newTestAssistant()

	// Mesaj hem selamlama hem deneme kuralıyla eşleşiyor; ilk kural kazanmalı
	reply := a.Reply("merhaba, deneme sonucumu nasıl girerim?")
	if !containsResponse(rules[0].responses, reply) {
		t.Errorf("ilk eşleşen kuralın yanıtı beklenirdi, gelen %q", reply)
	}
}

func TestReply_FallbackForUnknownMessage(t *testing.T) {
	a := newTestAssistant()

	reply := a.Reply("xyzxyz")
	if !containsResponse(fallbackResponses, reply) {
		t.Errorf("eşleşme yokken genel yanıt beklenirdi, gelen %q", reply)
	}
}

func TestReply_NeverReturnsEmpty(t *testing.T) {
	a := newTestAssistant()

	messages := []string{"", "motivasyonum yok", "sınava kaç gün kaldı", "ödevlerim birikti", "rastgele bir şey"}
	for _, message := range messages {
		if reply := a.Reply(message); strings.TrimSpace(reply) == "" {
			t.Errorf("asistan hiçbir mesaja boş yanıt vermemeli: %q", message)
		}
	}
}
