// Copyright 2021 The UMC Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rewrite

// Rule names the single rewrite that fired during one call to Step.
type Rule int

const (
	Empty Rule = iota
	StkCtxEmpty
	StkCtxDistr
	StkCtx3Redund
	LitQuote
	LitCall
	IntrClone
	IntrDrop
	IntrQuote
	IntrCompose
	IntrApply
	IntrPush
	IntrPop
	// Recursion into a Compose's head has no tag of its own: Step returns
	// the tag of the rule that fired inside the head.
)

var ruleNames = [...]string{
	"Empty", "StkCtxEmpty", "StkCtxDistr", "StkCtx3Redund", "LitQuote",
	"LitCall", "IntrClone", "IntrDrop", "IntrQuote", "IntrCompose",
	"IntrApply", "IntrPush", "IntrPop",
}

func (r Rule) String() string {
	if int(r) < 0 || int(r) >= len(ruleNames) {
		return "Rule(?)"
	}
	return ruleNames[r]
}
