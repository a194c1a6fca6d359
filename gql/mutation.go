package gql

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// MutationEntity 判断操作是否为实体的创建或更新变更，并返回实体名称
//
// 依据第一个变量的输入类型判断，例如 $input: CreateProductInput! 返回 Product，
// 列表和非空包装会被忽略。
func MutationEntity(op *ast.OperationDefinition) (string, bool) {
	if op == nil || op.Operation != ast.Mutation || len(op.VariableDefinitions) == 0 {
		return "", false
	}
	t := op.VariableDefinitions[0].Type
	if t == nil {
		return "", false
	}
	match := mutationInputRegex.FindStringSubmatch(t.Name())
	if match == nil {
		return "", false
	}
	return match[2], true
}

// SelectOperation 按名称选择要执行的操作，名称为空时文档中只能有一个操作
func SelectOperation(doc *ast.QueryDocument, name string) (*ast.OperationDefinition, error) {
	if doc == nil {
		return nil, ErrOperation
	}
	if name == "" {
		if len(doc.Operations) != 1 {
			return nil, ErrOperation
		}
		return doc.Operations[0], nil
	}
	if op := doc.Operations.ForName(name); op != nil {
		return op, nil
	}
	return nil, ErrOperation
}

// PrepareMutationVariables 按照先剔除只读字段、再转换关联字段的顺序处理变更变量
func PrepareMutationVariables(vars map[string]any, fields []*CustomField) map[string]any {
	return TransformRelationCustomFieldInputs(RemoveReadonlyCustomFields(vars, fields), fields)
}
