// Copyright 2018 Google LLC
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

package dicom

import "golang.org/x/text/encoding"

// dicomMetaData holds the state needed to decode and encode the elements of a data set. Sequence
// items inherit the metadata of their parent data set.
type dicomMetaData struct {
	syntax   transferSyntax
	encoding encoding.Encoding
}

var defaultMetaData = dicomMetaData{explicitVRLittleEndian, defaultCharacterRepertoire}

// withCharacterSet returns the metadata with the encoding selected by a Specific Character Set
// (0008,0005) element
func (md dicomMetaData) withCharacterSet(elem *DataElement) (dicomMetaData, error) {
	enc, err := encodingForTerms(elem.Strings())
	if err != nil {
		return md, err
	}
	md.encoding = enc
	return md, nil
}

// metaDataForDataSet returns the metadata for writing ds given the metadata of its parent
func metaDataForDataSet(parent dicomMetaData, ds *DataSet) (dicomMetaData, error) {
	if elem, ok := ds.Elements[SpecificCharacterSetTag]; ok && !elem.IsEmpty() {
		return parent.withCharacterSet(elem)
	}
	return parent, nil
}
